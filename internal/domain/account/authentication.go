package account

import (
	"fmt"
	"time"

	vo "scholaris/internal/domain/account/valueobjects"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// SecurityPolicy controls the per-account lockout behavior.
type SecurityPolicy struct {
	MaxFailedLogins int
	LockoutDuration time.Duration
}

func DefaultSecurityPolicy() *SecurityPolicy {
	return &SecurityPolicy{
		MaxFailedLogins: 5,
		LockoutDuration: 30 * time.Minute,
	}
}

// CanAuthenticate runs the account-state check that precedes password
// verification. It returns nil when credential verification may proceed.
// A locked status whose expiry has passed no longer blocks authentication.
func (a *Account) CanAuthenticate() error {
	switch {
	case a.status.IsLocked():
		if a.lockedUntil != nil && time.Now().After(*a.lockedUntil) {
			return nil // lock expired
		}
		return &LockedError{Until: a.lockedUntil}
	case a.status.IsSuspended():
		return ErrSuspended
	case a.status.IsActive():
		return nil
	case a.status.IsPendingVerification():
		if a.provisioned {
			return nil
		}
		if !a.IsEmailVerified() {
			return ErrEmailUnverified
		}
		return ErrInactive
	default:
		return ErrInactive
	}
}

// SetPassword hashes and stores a new password.
func (a *Account) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	a.passwordHash = &hash
	a.lastPasswordChangeAt = &now
	a.mustChangePassword = false
	a.touch()

	return nil
}

// VerifyPassword compares the submitted password against the stored hash.
// The comparison inside the hasher is constant-time. A mismatch records a
// failed attempt against the account under the supplied policy.
func (a *Account) VerifyPassword(plainPassword string, hasher PasswordHasher, policy *SecurityPolicy) error {
	if a.passwordHash == nil || *a.passwordHash == "" {
		return ErrNoPassword
	}

	if err := hasher.Verify(plainPassword, *a.passwordHash); err != nil {
		a.recordFailedLogin(policy)
		return ErrInvalidPassword
	}

	a.resetFailedLogins()
	return nil
}

func (a *Account) recordFailedLogin(policy *SecurityPolicy) {
	if policy == nil {
		policy = DefaultSecurityPolicy()
	}

	a.failedLoginAttempts++
	if a.failedLoginAttempts >= policy.MaxFailedLogins {
		until := time.Now().Add(policy.LockoutDuration)
		a.lockedUntil = &until
		a.status = vo.StatusLocked
	}
	a.touch()
}

func (a *Account) resetFailedLogins() {
	if a.failedLoginAttempts == 0 && a.lockedUntil == nil {
		return
	}
	a.failedLoginAttempts = 0
	a.lockedUntil = nil
	if a.status.IsLocked() {
		a.status = vo.StatusActive
	}
	a.touch()
}

// IsEmailVerified reports whether the email has been confirmed.
func (a *Account) IsEmailVerified() bool {
	return a.emailVerifiedAt != nil
}

// GenerateEmailVerificationToken issues a new verification token; only its
// hash is retained on the aggregate.
func (a *Account) GenerateEmailVerificationToken(ttl time.Duration) (*vo.Token, error) {
	token, err := vo.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	hash := token.Hash()
	expires := time.Now().Add(ttl)
	a.emailVerificationToken = &hash
	a.emailVerificationExpiresAt = &expires
	a.touch()

	return token, nil
}

// VerifyEmail confirms the email address with the supplied plain token.
func (a *Account) VerifyEmail(plainToken string) error {
	if a.IsEmailVerified() {
		return fmt.Errorf("email is already verified")
	}

	if a.emailVerificationToken == nil || *a.emailVerificationToken == "" {
		return ErrInvalidToken
	}

	if a.emailVerificationExpiresAt == nil || time.Now().After(*a.emailVerificationExpiresAt) {
		return ErrInvalidToken
	}

	token, err := vo.NewTokenFromValue(plainToken)
	if err != nil {
		return ErrInvalidToken
	}

	if token.Hash() != *a.emailVerificationToken {
		return ErrInvalidToken
	}

	now := time.Now()
	a.emailVerifiedAt = &now
	a.emailVerificationToken = nil
	a.emailVerificationExpiresAt = nil
	a.touch()

	return nil
}

// GeneratePasswordResetToken issues a new reset token, overwriting any
// outstanding one (last request wins).
func (a *Account) GeneratePasswordResetToken(ttl time.Duration) (*vo.Token, error) {
	token, err := vo.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	hash := token.Hash()
	expires := time.Now().Add(ttl)
	a.passwordResetToken = &hash
	a.passwordResetExpiresAt = &expires
	a.touch()

	return token, nil
}

// HasValidResetToken reports whether a non-expired reset token is
// outstanding.
func (a *Account) HasValidResetToken() bool {
	return a.passwordResetToken != nil && *a.passwordResetToken != "" &&
		a.passwordResetExpiresAt != nil && time.Now().Before(*a.passwordResetExpiresAt)
}

// ResetPassword consumes the reset token and replaces the password. The
// token is single-use: it is cleared on success, so a replay fails with
// the same generic error as a wrong token.
func (a *Account) ResetPassword(plainToken string, newPassword *vo.Password, hasher PasswordHasher) error {
	if a.passwordResetToken == nil || *a.passwordResetToken == "" {
		return ErrInvalidToken
	}

	if a.passwordResetExpiresAt == nil || time.Now().After(*a.passwordResetExpiresAt) {
		return ErrInvalidToken
	}

	token, err := vo.NewTokenFromValue(plainToken)
	if err != nil {
		return ErrInvalidToken
	}

	if token.Hash() != *a.passwordResetToken {
		return ErrInvalidToken
	}

	if err := a.SetPassword(newPassword, hasher); err != nil {
		return fmt.Errorf("failed to set new password: %w", err)
	}

	a.passwordResetToken = nil
	a.passwordResetExpiresAt = nil
	a.failedLoginAttempts = 0
	a.lockedUntil = nil

	return nil
}

// ChangePassword replaces the password after verifying the current one.
func (a *Account) ChangePassword(currentPassword string, newPassword *vo.Password, hasher PasswordHasher) error {
	if a.passwordHash == nil || *a.passwordHash == "" {
		return ErrNoPassword
	}

	if err := hasher.Verify(currentPassword, *a.passwordHash); err != nil {
		return ErrInvalidPassword
	}

	return a.SetPassword(newPassword, hasher)
}

// HasPassword reports whether a credential is set.
func (a *Account) HasPassword() bool {
	return a.passwordHash != nil && *a.passwordHash != ""
}
