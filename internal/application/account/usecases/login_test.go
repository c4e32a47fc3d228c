package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/account"
	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

func newTestAccount(t *testing.T, role authorization.UserRole, verified bool) *account.Account {
	t.Helper()

	email, err := vo.NewEmail("teacher@example.edu")
	require.NoError(t, err)
	acc, err := account.NewAccount(email, "jsharma", "J. Sharma", role)
	require.NoError(t, err)

	password, err := vo.NewPassword("Str0ng!Passw0rd")
	require.NoError(t, err)
	require.NoError(t, acc.SetPassword(password, fakeHasher{}))
	require.NoError(t, acc.SetID(7))

	if verified {
		token, err := acc.GenerateEmailVerificationToken(time.Hour)
		require.NoError(t, err)
		require.NoError(t, acc.VerifyEmail(token.Value()))
	}
	return acc
}

func newLoginFixture(t *testing.T, acc *account.Account) (*LoginUseCase, *mockAccountRepository, *mockSessionRepository, *mockActivityRepository, *mockLoginLimiter) {
	t.Helper()

	accountRepo := &mockAccountRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			if acc != nil && email == acc.Email().String() {
				return acc, nil
			}
			return nil, nil
		},
		GetByUsernameFunc: func(ctx context.Context, username string) (*account.Account, error) {
			if acc != nil && username == acc.Username() {
				return acc, nil
			}
			return nil, nil
		},
	}
	sessionRepo := &mockSessionRepository{}
	activityRepo := &mockActivityRepository{}
	limiter := &mockLoginLimiter{allowed: true}

	destinations, err := authorization.LoadDestinationTable()
	require.NoError(t, err)

	uc := NewLoginUseCase(
		accountRepo,
		activityRepo,
		&mockUnitOfWork{accounts: accountRepo, sessions: sessionRepo, activity: activityRepo},
		fakeHasher{},
		&mockTokenService{},
		limiter,
		destinations,
		account.DefaultSecurityPolicy(),
		config.SessionConfig{DefaultExpDays: 1, RememberExpDays: 30},
		logger.NewLogger(),
	)
	return uc, accountRepo, sessionRepo, activityRepo, limiter
}

func TestLoginSuccessReturnsRoleDestination(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	uc, _, sessionRepo, _, limiter := newLoginFixture(t, acc)

	var created *account.Session
	sessionRepo.CreateFunc = func(s *account.Session) error {
		created = s
		return nil
	}

	result, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "teacher@example.edu",
		Password:   "Str0ng!Passw0rd",
		IPAddress:  "203.0.113.9",
		UserAgent:  "test-agent",
	})
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, "/teacher/dashboard", result.Redirect)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.False(t, result.MustChangePassword)

	require.NotNil(t, created)
	assert.Len(t, created.ID, 64)
	assert.Equal(t, "hash:"+result.AccessToken, created.TokenHash)
	assert.Equal(t, "hash:"+result.RefreshToken, created.RefreshTokenHash)
	assert.Equal(t, 1, limiter.clearCalls)
}

func TestLoginByUsername(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	uc, _, _, _, _ := newLoginFixture(t, acc)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "jsharma",
		Password:   "Str0ng!Passw0rd",
	})
	require.NoError(t, err)
	assert.Equal(t, acc.ID(), result.Account.ID())
}

func TestLoginUnknownIdentifierIsIndistinguishableFromWrongPassword(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	uc, _, _, _, _ := newLoginFixture(t, acc)

	_, unknownErr := uc.Execute(context.Background(), LoginCommand{
		Identifier: "nobody@example.edu",
		Password:   "Str0ng!Passw0rd",
	})
	require.Error(t, unknownErr)

	_, wrongPwErr := uc.Execute(context.Background(), LoginCommand{
		Identifier: "teacher@example.edu",
		Password:   "Wr0ng!Passw0rd",
	})
	require.Error(t, wrongPwErr)

	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestLoginRateLimited(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	uc, accountRepo, _, activityRepo, limiter := newLoginFixture(t, acc)
	limiter.allowed = false
	limiter.retryAfter = 90 * time.Second

	lookups := 0
	accountRepo.GetByEmailFunc = func(ctx context.Context, email string) (*account.Account, error) {
		lookups++
		return acc, nil
	}

	_, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "teacher@example.edu",
		Password:   "Str0ng!Passw0rd",
	})
	require.Error(t, err)

	authErr := errors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, 0, lookups, "rate limiting must reject before any account lookup")
	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, account.ActivitySecurityEvent, activityRepo.entries[0].Type)
}

func TestLoginLimiterOutageDoesNotBlockLogin(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	uc, _, _, _, limiter := newLoginFixture(t, acc)
	limiter.allowErr = assert.AnError

	result, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "teacher@example.edu",
		Password:   "Str0ng!Passw0rd",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}

func TestLoginWrongPasswordPersistsCounter(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	uc, accountRepo, _, activityRepo, _ := newLoginFixture(t, acc)

	updates := 0
	accountRepo.UpdateFunc = func(ctx context.Context, a *account.Account) error {
		updates++
		return nil
	}

	_, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "teacher@example.edu",
		Password:   "Wr0ng!Passw0rd",
	})
	require.Error(t, err)

	assert.Equal(t, 1, updates)
	assert.Equal(t, 1, acc.FailedLoginAttempts())
	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, account.ActivityLoginFailed, activityRepo.entries[0].Type)
}

func TestLoginLockedAccountReportsRemainingMinutes(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	until := time.Now().Add(20 * time.Minute)
	require.NoError(t, acc.Lock("too many failed logins", &until))

	uc, _, _, activityRepo, _ := newLoginFixture(t, acc)

	_, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "teacher@example.edu",
		Password:   "Str0ng!Passw0rd",
	})
	require.Error(t, err)

	authErr := errors.GetAuthError(err)
	require.NotNil(t, authErr)
	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, account.ActivitySecurityEvent, activityRepo.entries[0].Type)
}

func TestLoginUnverifiedProvisionedAccountLandsOnNotice(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleStudent, false)
	uc, _, _, _, _ := newLoginFixture(t, acc)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "teacher@example.edu",
		Password:   "Str0ng!Passw0rd",
	})
	require.NoError(t, err)
	assert.Equal(t, "/verify-email/notice", result.Redirect)
}

func TestLoginForcedPasswordChangeWithholdsSession(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	acc.RequirePasswordChange()
	uc, _, sessionRepo, activityRepo, _ := newLoginFixture(t, acc)

	sessions := 0
	sessionRepo.CreateFunc = func(s *account.Session) error {
		sessions++
		return nil
	}

	result, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "teacher@example.edu",
		Password:   "Str0ng!Passw0rd",
	})
	require.NoError(t, err)

	assert.Equal(t, OutcomeNeedsPasswordChange, result.Outcome)
	assert.True(t, result.MustChangePassword)
	assert.Equal(t, "/change-password", result.Redirect)
	assert.NotEmpty(t, result.PasswordChangeToken)

	// No session, no tokens: the account is unusable until the change.
	assert.Zero(t, sessions)
	assert.Empty(t, result.SessionID)
	assert.Empty(t, result.AccessToken)
	assert.Empty(t, result.RefreshToken)
	for _, entry := range activityRepo.entries {
		assert.NotEqual(t, account.ActivityLoginSuccess, entry.Type)
	}
}

// countingHasher records how often the password comparison runs.
type countingHasher struct {
	verifies int
}

func (h *countingHasher) Hash(password string) (string, error) {
	return fakeHasher{}.Hash(password)
}

func (h *countingHasher) Verify(password, hash string) error {
	h.verifies++
	return fakeHasher{}.Verify(password, hash)
}

func TestLoginBlockedAccountsSkipPasswordVerify(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(t *testing.T, acc *account.Account)
	}{
		{"locked", func(t *testing.T, acc *account.Account) {
			until := time.Now().Add(20 * time.Minute)
			require.NoError(t, acc.Lock("too many failed logins", &until))
		}},
		{"suspended", func(t *testing.T, acc *account.Account) {
			require.NoError(t, acc.Suspend("conduct review"))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acc := newTestAccount(t, authorization.RoleTeacher, true)
			tc.prepare(t, acc)

			hasher := &countingHasher{}
			accountRepo := &mockAccountRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
					return acc, nil
				},
			}
			sessionRepo := &mockSessionRepository{}
			activityRepo := &mockActivityRepository{}

			destinations, err := authorization.LoadDestinationTable()
			require.NoError(t, err)

			uc := NewLoginUseCase(
				accountRepo,
				activityRepo,
				&mockUnitOfWork{accounts: accountRepo, sessions: sessionRepo, activity: activityRepo},
				hasher,
				&mockTokenService{},
				&mockLoginLimiter{allowed: true},
				destinations,
				account.DefaultSecurityPolicy(),
				config.SessionConfig{DefaultExpDays: 1, RememberExpDays: 30},
				logger.NewLogger(),
			)

			_, err = uc.Execute(context.Background(), LoginCommand{
				Identifier: "teacher@example.edu",
				Password:   "Str0ng!Passw0rd",
			})
			require.Error(t, err)
			assert.Zero(t, hasher.verifies, "state check must reject before the password comparison")
		})
	}
}

func TestLoginSessionCommitRollsBackCleanly(t *testing.T) {
	acc := newTestAccount(t, authorization.RoleTeacher, true)
	uc, accountRepo, sessionRepo, activityRepo, limiter := newLoginFixture(t, acc)
	_ = accountRepo
	_ = activityRepo

	sessionRepo.CreateFunc = func(s *account.Session) error {
		return assert.AnError
	}

	_, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "teacher@example.edu",
		Password:   "Str0ng!Passw0rd",
	})
	require.Error(t, err)
	assert.Equal(t, 0, limiter.clearCalls)
}
