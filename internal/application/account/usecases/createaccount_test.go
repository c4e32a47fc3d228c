package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/account"
	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

func newCreateAccountFixture(existing *account.Account) (*CreateAccountUseCase, *mockAccountRepository, *mockEmailSender) {
	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			if existing != nil && email == existing.Email().String() {
				return existing, nil
			}
			return nil, nil
		},
		GetByUsernameFunc: func(ctx context.Context, username string) (*account.Account, error) {
			if existing != nil && username == existing.Username() {
				return existing, nil
			}
			return nil, nil
		},
	}
	mailer := &mockEmailSender{}
	uc := NewCreateAccountUseCase(accountRepo, fakeHasher{}, mailer, config.TokenConfig{VerificationExpiresHours: 48}, logger.NewLogger())
	return uc, accountRepo, mailer
}

func TestCreateAccountProvisionsWithForcedPasswordChange(t *testing.T) {
	uc, accountRepo, mailer := newCreateAccountFixture(nil)

	var created *account.Account
	accountRepo.CreateFunc = func(ctx context.Context, acc *account.Account) error {
		created = acc
		return acc.SetID(42)
	}

	result, err := uc.Execute(context.Background(), CreateAccountCommand{
		Email:             "new.student@example.edu",
		Username:          "nstudent",
		FullName:          "N. Student",
		Role:              "student",
		TemporaryPassword: "T3mp!Passw0rd",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.True(t, created.MustChangePassword())
	assert.Equal(t, authorization.RoleStudent, created.Role())
	assert.False(t, created.IsEmailVerified())
	require.NoError(t, created.VerifyPassword("T3mp!Passw0rd", fakeHasher{}, account.DefaultSecurityPolicy()))

	assert.Equal(t, 1, mailer.verificationSent)
	assert.Equal(t, result.VerificationToken, mailer.lastToken)
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	email, err := vo.NewEmail("taken@example.edu")
	require.NoError(t, err)
	existing, err := account.NewAccount(email, "taken", "Taken", authorization.RoleTeacher)
	require.NoError(t, err)

	uc, _, _ := newCreateAccountFixture(existing)

	_, err = uc.Execute(context.Background(), CreateAccountCommand{
		Email:             "taken@example.edu",
		Username:          "fresh",
		FullName:          "Fresh",
		Role:              "teacher",
		TemporaryPassword: "T3mp!Passw0rd",
	})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestCreateAccountRejectsUnknownRole(t *testing.T) {
	uc, _, _ := newCreateAccountFixture(nil)

	_, err := uc.Execute(context.Background(), CreateAccountCommand{
		Email:             "new@example.edu",
		Username:          "new",
		FullName:          "New",
		Role:              "janitor",
		TemporaryPassword: "T3mp!Passw0rd",
	})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestCreateAccountRejectsWeakTemporaryPassword(t *testing.T) {
	uc, _, _ := newCreateAccountFixture(nil)

	_, err := uc.Execute(context.Background(), CreateAccountCommand{
		Email:             "new@example.edu",
		Username:          "new",
		FullName:          "New",
		Role:              "teacher",
		TemporaryPassword: "weak",
	})
	require.Error(t, err)
}
