package account

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "scholaris/internal/domain/account/valueobjects"
)

// fakeHasher records whether Verify was ever invoked, so state-check tests
// can assert the password comparison never runs for blocked accounts.
type fakeHasher struct {
	verifyCalled bool
	failVerify   bool
}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(password, hash string) error {
	h.verifyCalled = true
	if h.failVerify || hash != "hashed:"+password {
		return errors.New("password verification failed")
	}
	return nil
}

func mustPassword(t *testing.T, plain string) *vo.Password {
	t.Helper()
	pwd, err := vo.NewPassword(plain)
	require.NoError(t, err)
	return pwd
}

func TestCanAuthenticate(t *testing.T) {
	t.Run("active account may authenticate", func(t *testing.T) {
		acct := newTestAccount(t)
		markEmailVerified(t, acct)
		require.True(t, acct.ActivateIfEligible())

		assert.NoError(t, acct.CanAuthenticate())
	})

	t.Run("pending provisioned account may authenticate", func(t *testing.T) {
		acct := newTestAccount(t)
		assert.NoError(t, acct.CanAuthenticate())
	})

	t.Run("suspended rejected", func(t *testing.T) {
		acct := newTestAccount(t)
		require.NoError(t, acct.Suspend("cheating"))

		assert.ErrorIs(t, acct.CanAuthenticate(), ErrSuspended)
	})

	t.Run("locked without expiry rejected", func(t *testing.T) {
		acct := newTestAccount(t)
		require.NoError(t, acct.Lock("manual", nil))

		err := acct.CanAuthenticate()
		lockedErr, ok := IsLockedError(err)
		require.True(t, ok)
		assert.Nil(t, lockedErr.Until)
		assert.Zero(t, lockedErr.RemainingMinutes())
	})

	t.Run("locked with future expiry reports remaining minutes", func(t *testing.T) {
		acct := newTestAccount(t)
		until := time.Now().Add(10 * time.Minute)
		require.NoError(t, acct.Lock("brute force", &until))

		err := acct.CanAuthenticate()
		lockedErr, ok := IsLockedError(err)
		require.True(t, ok)
		assert.Greater(t, lockedErr.RemainingMinutes(), 0)
		assert.LessOrEqual(t, lockedErr.RemainingMinutes(), 10)
	})

	t.Run("expired lock no longer blocks", func(t *testing.T) {
		acct := newTestAccount(t)
		until := time.Now().Add(-time.Minute)
		require.NoError(t, acct.Lock("brute force", &until))

		assert.NoError(t, acct.CanAuthenticate())
	})

	t.Run("inactive rejected", func(t *testing.T) {
		acct := newTestAccount(t)
		require.NoError(t, acct.Deactivate())

		assert.ErrorIs(t, acct.CanAuthenticate(), ErrInactive)
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Run("correct password resets failure counter", func(t *testing.T) {
		acct := newTestAccount(t)
		hasher := &fakeHasher{}
		require.NoError(t, acct.SetPassword(mustPassword(t, "Str0ng!pass"), hasher))

		hasher.failVerify = true
		require.Error(t, acct.VerifyPassword("wrong", hasher, nil))
		assert.Equal(t, 1, acct.FailedLoginAttempts())

		hasher.failVerify = false
		require.NoError(t, acct.VerifyPassword("Str0ng!pass", hasher, nil))
		assert.Zero(t, acct.FailedLoginAttempts())
	})

	t.Run("no password set", func(t *testing.T) {
		acct := newTestAccount(t)
		err := acct.VerifyPassword("anything", &fakeHasher{}, nil)
		assert.ErrorIs(t, err, ErrNoPassword)
	})

	t.Run("lockout after max failed attempts", func(t *testing.T) {
		acct := newTestAccount(t)
		hasher := &fakeHasher{failVerify: true}
		require.NoError(t, acct.SetPassword(mustPassword(t, "Str0ng!pass"), &fakeHasher{}))

		policy := &SecurityPolicy{MaxFailedLogins: 3, LockoutDuration: 15 * time.Minute}
		for i := 0; i < 3; i++ {
			require.Error(t, acct.VerifyPassword("wrong", hasher, policy))
		}

		assert.Equal(t, vo.StatusLocked, acct.Status())
		require.NotNil(t, acct.LockedUntil())
		_, locked := IsLockedError(acct.CanAuthenticate())
		assert.True(t, locked)
	})
}

func TestPasswordResetRoundTrip(t *testing.T) {
	acct := newTestAccount(t)
	hasher := &fakeHasher{}
	require.NoError(t, acct.SetPassword(mustPassword(t, "Old!pass123"), hasher))

	token, err := acct.GeneratePasswordResetToken(time.Hour)
	require.NoError(t, err)
	require.True(t, acct.HasValidResetToken())

	require.NoError(t, acct.ResetPassword(token.Value(), mustPassword(t, "New!pass456"), hasher))
	assert.False(t, acct.HasValidResetToken())
	assert.NoError(t, acct.VerifyPassword("New!pass456", hasher, nil))

	// Token is single-use: a replay fails with the generic token error.
	err = acct.ResetPassword(token.Value(), mustPassword(t, "Third!pass7"), hasher)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	acct := newTestAccount(t)
	hasher := &fakeHasher{}

	token, err := acct.GeneratePasswordResetToken(-time.Minute)
	require.NoError(t, err)

	err = acct.ResetPassword(token.Value(), mustPassword(t, "New!pass456"), hasher)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPasswordSecondRequestOverwritesFirst(t *testing.T) {
	acct := newTestAccount(t)
	hasher := &fakeHasher{}

	first, err := acct.GeneratePasswordResetToken(time.Hour)
	require.NoError(t, err)
	second, err := acct.GeneratePasswordResetToken(time.Hour)
	require.NoError(t, err)

	// The first token was silently invalidated by the second request.
	assert.ErrorIs(t, acct.ResetPassword(first.Value(), mustPassword(t, "New!pass456"), hasher), ErrInvalidToken)
	assert.NoError(t, acct.ResetPassword(second.Value(), mustPassword(t, "New!pass456"), hasher))
}

func TestChangePassword(t *testing.T) {
	acct := newTestAccount(t)
	hasher := &fakeHasher{}
	require.NoError(t, acct.SetPassword(mustPassword(t, "Old!pass123"), hasher))
	acct.RequirePasswordChange()

	err := acct.ChangePassword("not-the-password", mustPassword(t, "New!pass456"), &fakeHasher{failVerify: true})
	assert.ErrorIs(t, err, ErrInvalidPassword)

	require.NoError(t, acct.ChangePassword("Old!pass123", mustPassword(t, "New!pass456"), hasher))
	// A successful password change clears the forced-change flag.
	assert.False(t, acct.MustChangePassword())
}

func TestEmailVerification(t *testing.T) {
	acct := newTestAccount(t)

	token, err := acct.GenerateEmailVerificationToken(24 * time.Hour)
	require.NoError(t, err)

	assert.ErrorIs(t, acct.VerifyEmail("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"), ErrInvalidToken)

	require.NoError(t, acct.VerifyEmail(token.Value()))
	assert.True(t, acct.IsEmailVerified())

	assert.Error(t, acct.VerifyEmail(token.Value())) // already verified
}

func TestSessionLifecycle(t *testing.T) {
	sess, err := NewSession(7, "203.0.113.9", "Mozilla/5.0", LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Len(t, sess.ID, 64)
	assert.True(t, sess.Active)
	assert.False(t, sess.IsExpired())

	sess.End(EndReasonUserLogout)
	assert.False(t, sess.Active)
	require.NotNil(t, sess.EndReason)
	assert.Equal(t, EndReasonUserLogout, *sess.EndReason)
	endedAt := *sess.EndedAt

	// Ending again is a no-op.
	sess.End(EndReasonAdminRevoked)
	assert.Equal(t, EndReasonUserLogout, *sess.EndReason)
	assert.Equal(t, endedAt, *sess.EndedAt)
}

func TestNewSessionGeneratesDistinctIDs(t *testing.T) {
	a, err := NewSession(1, "", "", LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)
	b, err := NewSession(1, "", "", LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
