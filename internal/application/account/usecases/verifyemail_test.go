package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/account"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/logger"
)

func newVerifyEmailFixture(acc *account.Account) *VerifyEmailUseCase {
	accountRepo := &mockAccountRepository{
		GetByVerificationTokenHashFunc: func(ctx context.Context, tokenHash string) (*account.Account, error) {
			if acc != nil {
				if stored := acc.GetAuthData().EmailVerificationToken; stored != nil && *stored == tokenHash {
					return acc, nil
				}
			}
			return nil, nil
		},
	}
	return NewVerifyEmailUseCase(accountRepo, logger.NewLogger())
}

func TestVerifyEmailActivatesProvisionedAccount(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleStudent, false)
	token, err := acc.GenerateEmailVerificationToken(48 * time.Hour)
	require.NoError(t, err)

	uc := newVerifyEmailFixture(acc)

	err = uc.Execute(context.Background(), VerifyEmailCommand{Token: token.Value()})
	require.NoError(t, err)

	assert.True(t, acc.IsEmailVerified())
	assert.True(t, acc.Status().IsActive())
}

func TestVerifyEmailRejectsUnknownToken(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleStudent, false)
	uc := newVerifyEmailFixture(acc)

	err := uc.Execute(context.Background(), VerifyEmailCommand{
		Token: "0000000000000000000000000000000000000000000000000000000000000000",
	})
	require.Error(t, err)
	assert.False(t, acc.IsEmailVerified())
}

func TestVerifyEmailRejectsExpiredToken(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleStudent, false)
	token, err := acc.GenerateEmailVerificationToken(-time.Minute)
	require.NoError(t, err)

	uc := newVerifyEmailFixture(acc)

	err = uc.Execute(context.Background(), VerifyEmailCommand{Token: token.Value()})
	require.Error(t, err)
	assert.False(t, acc.IsEmailVerified())
}
