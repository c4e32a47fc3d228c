package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/shared/authorization"
)

func newTestAccount(t *testing.T) *Account {
	t.Helper()
	email, err := vo.NewEmail("alice@example.com")
	require.NoError(t, err)
	acct, err := NewAccount(email, "alice", "Alice Johnson", authorization.RoleTeacher)
	require.NoError(t, err)
	require.NoError(t, acct.SetID(1))
	return acct
}

func TestNewAccountDefaults(t *testing.T) {
	acct := newTestAccount(t)

	assert.Equal(t, vo.StatusPendingVerification, acct.Status())
	assert.True(t, acct.Provisioned())
	assert.False(t, acct.IsEmailVerified())
	assert.False(t, acct.MustChangePassword())
	assert.Equal(t, authorization.RoleTeacher, acct.Role())
}

func TestNewAccountValidation(t *testing.T) {
	email, err := vo.NewEmail("bob@example.com")
	require.NoError(t, err)

	_, err = NewAccount(nil, "bob", "Bob", authorization.RoleStudent)
	assert.Error(t, err)

	_, err = NewAccount(email, "", "Bob", authorization.RoleStudent)
	assert.Error(t, err)

	_, err = NewAccount(email, "bob", "Bob", authorization.UserRole("janitor"))
	assert.Error(t, err)
}

func TestActivateIfEligible(t *testing.T) {
	t.Run("pending, provisioned, verified email transitions to active", func(t *testing.T) {
		acct := newTestAccount(t)
		markEmailVerified(t, acct)

		assert.True(t, acct.ActivateIfEligible())
		assert.Equal(t, vo.StatusActive, acct.Status())
	})

	t.Run("pending but unverified does not transition", func(t *testing.T) {
		acct := newTestAccount(t)

		assert.False(t, acct.ActivateIfEligible())
		assert.Equal(t, vo.StatusPendingVerification, acct.Status())
	})

	t.Run("already active is a no-op", func(t *testing.T) {
		acct := newTestAccount(t)
		markEmailVerified(t, acct)
		require.True(t, acct.ActivateIfEligible())

		assert.False(t, acct.ActivateIfEligible())
	})
}

func TestLockRequiresReasonOrExpiry(t *testing.T) {
	acct := newTestAccount(t)

	err := acct.Lock("", nil)
	assert.Error(t, err)

	until := time.Now().Add(time.Hour)
	require.NoError(t, acct.Lock("", &until))
	assert.Equal(t, vo.StatusLocked, acct.Status())
	require.NotNil(t, acct.LockedUntil())
}

func TestUnlockRestoresActive(t *testing.T) {
	acct := newTestAccount(t)
	require.NoError(t, acct.Lock("too many attempts", nil))

	require.NoError(t, acct.Unlock())
	assert.Equal(t, vo.StatusActive, acct.Status())
	assert.Nil(t, acct.LockedUntil())
	assert.Zero(t, acct.FailedLoginAttempts())
}

func TestSuspendRequiresReason(t *testing.T) {
	acct := newTestAccount(t)

	assert.Error(t, acct.Suspend(""))
	require.NoError(t, acct.Suspend("policy violation"))
	assert.Equal(t, vo.StatusSuspended, acct.Status())
}

func TestRequirePasswordChange(t *testing.T) {
	acct := newTestAccount(t)
	acct.RequirePasswordChange()
	assert.True(t, acct.MustChangePassword())
}

func markEmailVerified(t *testing.T, acct *Account) {
	t.Helper()
	token, err := acct.GenerateEmailVerificationToken(24 * time.Hour)
	require.NoError(t, err)
	require.NoError(t, acct.VerifyEmail(token.Value()))
}
