package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/account"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

func TestRequestPasswordResetSendsTokenAndRecordsActivity(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return acc, nil
		},
	}
	activityRepo := &mockActivityRepository{}
	mailer := &mockEmailSender{}

	uc := NewRequestPasswordResetUseCase(accountRepo, activityRepo, mailer, config.TokenConfig{ResetExpiresMinutes: 30}, logger.NewLogger())

	err := uc.Execute(context.Background(), RequestPasswordResetCommand{Email: "teacher@example.edu"})
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.resetSent)
	assert.NotEmpty(t, mailer.lastToken)
	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, account.ActivityPasswordResetRequested, activityRepo.entries[0].Type)
}

func TestRequestPasswordResetUnknownEmailRevealsNothing(t *testing.T) {
	accountRepo := &mockAccountRepository{}
	activityRepo := &mockActivityRepository{}
	mailer := &mockEmailSender{}

	uc := NewRequestPasswordResetUseCase(accountRepo, activityRepo, mailer, config.TokenConfig{ResetExpiresMinutes: 30}, logger.NewLogger())

	err := uc.Execute(context.Background(), RequestPasswordResetCommand{Email: "nobody@example.edu"})
	require.NoError(t, err)

	assert.Zero(t, mailer.resetSent)
	assert.Empty(t, activityRepo.entries)
}

func newResetPasswordFixture(t *testing.T, acc *account.Account) (*ResetPasswordUseCase, *mockSessionRepository, *mockActivityRepository, *mockEmailSender) {
	t.Helper()

	accountRepo := &mockAccountRepository{
		GetByResetTokenHashFunc: func(ctx context.Context, tokenHash string) (*account.Account, error) {
			if acc != nil {
				if stored := acc.GetAuthData().PasswordResetToken; stored != nil && *stored == tokenHash {
					return acc, nil
				}
			}
			return nil, nil
		},
	}
	sessionRepo := &mockSessionRepository{}
	activityRepo := &mockActivityRepository{}
	mailer := &mockEmailSender{}

	uc := NewResetPasswordUseCase(
		accountRepo,
		&mockUnitOfWork{accounts: accountRepo, sessions: sessionRepo, activity: activityRepo},
		fakeHasher{},
		mailer,
		logger.NewLogger(),
	)
	return uc, sessionRepo, activityRepo, mailer
}

func TestResetPasswordConsumesTokenAndEndsSessions(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	token, err := acc.GeneratePasswordResetToken(30 * time.Minute)
	require.NoError(t, err)

	uc, sessionRepo, activityRepo, mailer := newResetPasswordFixture(t, acc)

	var endedAccount uint
	var endedReason account.EndReason
	sessionRepo.EndByAccountIDFunc = func(accountID uint, reason account.EndReason) error {
		endedAccount = accountID
		endedReason = reason
		return nil
	}

	err = uc.Execute(context.Background(), ResetPasswordCommand{
		Token:       token.Value(),
		NewPassword: "N3w!Passw0rd",
	})
	require.NoError(t, err)

	assert.Equal(t, acc.ID(), endedAccount)
	assert.Equal(t, account.EndReasonPasswordChanged, endedReason)
	assert.Nil(t, acc.GetAuthData().PasswordResetToken, "token must be single use")
	require.NoError(t, acc.VerifyPassword("N3w!Passw0rd", fakeHasher{}, account.DefaultSecurityPolicy()))
	assert.Equal(t, 1, mailer.passwordChangedSent)
	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, account.ActivityPasswordResetCompleted, activityRepo.entries[0].Type)
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	uc, _, _, _ := newResetPasswordFixture(t, acc)

	err := uc.Execute(context.Background(), ResetPasswordCommand{
		Token:       "0000000000000000000000000000000000000000000000000000000000000000",
		NewPassword: "N3w!Passw0rd",
	})
	require.Error(t, err)

	authErr := errors.GetAuthError(err)
	require.NotNil(t, authErr)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	token, err := acc.GeneratePasswordResetToken(-time.Minute)
	require.NoError(t, err)

	uc, _, _, mailer := newResetPasswordFixture(t, acc)

	err = uc.Execute(context.Background(), ResetPasswordCommand{
		Token:       token.Value(),
		NewPassword: "N3w!Passw0rd",
	})
	require.Error(t, err)

	assert.Zero(t, mailer.passwordChangedSent)
	require.NoError(t, acc.VerifyPassword("Str0ng!Passw0rd", fakeHasher{}, account.DefaultSecurityPolicy()))
}

func TestResetPasswordUnknownAndExpiredTokensAreIndistinguishable(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	expired, err := acc.GeneratePasswordResetToken(-time.Minute)
	require.NoError(t, err)

	uc, _, _, _ := newResetPasswordFixture(t, acc)

	unknownErr := uc.Execute(context.Background(), ResetPasswordCommand{
		Token:       "0000000000000000000000000000000000000000000000000000000000000000",
		NewPassword: "N3w!Passw0rd",
	})
	require.Error(t, unknownErr)

	expiredErr := uc.Execute(context.Background(), ResetPasswordCommand{
		Token:       expired.Value(),
		NewPassword: "N3w!Passw0rd",
	})
	require.Error(t, expiredErr)

	assert.Equal(t, unknownErr.Error(), expiredErr.Error())
	unknownAuth := errors.GetAuthError(unknownErr)
	expiredAuth := errors.GetAuthError(expiredErr)
	require.NotNil(t, unknownAuth)
	require.NotNil(t, expiredAuth)
	assert.Equal(t, unknownAuth.Type, expiredAuth.Type)
	assert.Equal(t, unknownAuth.Details, expiredAuth.Details)
}

func TestResetPasswordTokenCannotBeReplayed(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	token, err := acc.GeneratePasswordResetToken(30 * time.Minute)
	require.NoError(t, err)

	uc, _, _, _ := newResetPasswordFixture(t, acc)

	cmd := ResetPasswordCommand{Token: token.Value(), NewPassword: "N3w!Passw0rd"}
	require.NoError(t, uc.Execute(context.Background(), cmd))

	err = uc.Execute(context.Background(), cmd)
	require.Error(t, err)
}
