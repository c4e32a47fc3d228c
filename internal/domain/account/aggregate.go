package account

import (
	"fmt"
	"time"

	"scholaris/internal/shared/authorization"
	vo "scholaris/internal/domain/account/valueobjects"
)

// Account represents the account aggregate root: one login-capable
// identity with credentials, lifecycle status and a primary role.
type Account struct {
	id       uint
	email    *vo.Email
	username string
	name     string
	phone    string
	role     authorization.UserRole
	status   vo.Status

	// provisioned is independent of status: a pending_verification account
	// may authenticate only when it has been provisioned by an admin.
	provisioned bool

	lockReason  *string
	lockedUntil *time.Time

	failedLoginAttempts int
	mustChangePassword  bool

	passwordHash               *string
	lastPasswordChangeAt       *time.Time
	emailVerifiedAt            *time.Time
	emailVerificationToken     *string
	emailVerificationExpiresAt *time.Time
	passwordResetToken         *string
	passwordResetExpiresAt     *time.Time
	lastLoginAt                *time.Time

	createdAt time.Time
	updatedAt time.Time
	version   int
}

// NewAccount creates a new account aggregate in pending_verification state.
func NewAccount(email *vo.Email, username, name string, role authorization.UserRole) (*Account, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &Account{
		email:       email,
		username:    username,
		name:        name,
		role:        role,
		status:      vo.StatusPendingVerification,
		provisioned: true,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}, nil
}

// AuthData carries credential and lifecycle fields for reconstruction.
type AuthData struct {
	Provisioned                bool
	LockReason                 *string
	LockedUntil                *time.Time
	FailedLoginAttempts        int
	MustChangePassword         bool
	PasswordHash               *string
	LastPasswordChangeAt       *time.Time
	EmailVerifiedAt            *time.Time
	EmailVerificationToken     *string
	EmailVerificationExpiresAt *time.Time
	PasswordResetToken         *string
	PasswordResetExpiresAt     *time.Time
	LastLoginAt                *time.Time
}

// Reconstruct rebuilds an account from persistence.
func Reconstruct(
	id uint,
	email *vo.Email,
	username, name, phone string,
	role authorization.UserRole,
	status vo.Status,
	createdAt, updatedAt time.Time,
	version int,
	authData *AuthData,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	a := &Account{
		id:        id,
		email:     email,
		username:  username,
		name:      name,
		phone:     phone,
		role:      role,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
	}

	if authData != nil {
		a.provisioned = authData.Provisioned
		a.lockReason = authData.LockReason
		a.lockedUntil = authData.LockedUntil
		a.failedLoginAttempts = authData.FailedLoginAttempts
		a.mustChangePassword = authData.MustChangePassword
		a.passwordHash = authData.PasswordHash
		a.lastPasswordChangeAt = authData.LastPasswordChangeAt
		a.emailVerifiedAt = authData.EmailVerifiedAt
		a.emailVerificationToken = authData.EmailVerificationToken
		a.emailVerificationExpiresAt = authData.EmailVerificationExpiresAt
		a.passwordResetToken = authData.PasswordResetToken
		a.passwordResetExpiresAt = authData.PasswordResetExpiresAt
		a.lastLoginAt = authData.LastLoginAt
	}

	return a, nil
}

// GetAuthData extracts credential fields for persistence.
func (a *Account) GetAuthData() *AuthData {
	return &AuthData{
		Provisioned:                a.provisioned,
		LockReason:                 a.lockReason,
		LockedUntil:                a.lockedUntil,
		FailedLoginAttempts:        a.failedLoginAttempts,
		MustChangePassword:         a.mustChangePassword,
		PasswordHash:               a.passwordHash,
		LastPasswordChangeAt:       a.lastPasswordChangeAt,
		EmailVerifiedAt:            a.emailVerifiedAt,
		EmailVerificationToken:     a.emailVerificationToken,
		EmailVerificationExpiresAt: a.emailVerificationExpiresAt,
		PasswordResetToken:         a.passwordResetToken,
		PasswordResetExpiresAt:     a.passwordResetExpiresAt,
		LastLoginAt:                a.lastLoginAt,
	}
}

func (a *Account) ID() uint                      { return a.id }
func (a *Account) Email() *vo.Email              { return a.email }
func (a *Account) Username() string              { return a.username }
func (a *Account) Name() string                  { return a.name }
func (a *Account) Phone() string                 { return a.phone }
func (a *Account) Role() authorization.UserRole  { return a.role }
func (a *Account) Status() vo.Status             { return a.status }
func (a *Account) Provisioned() bool             { return a.provisioned }
func (a *Account) MustChangePassword() bool      { return a.mustChangePassword }
func (a *Account) FailedLoginAttempts() int      { return a.failedLoginAttempts }
func (a *Account) LockedUntil() *time.Time       { return a.lockedUntil }
func (a *Account) LockReason() *string           { return a.lockReason }
func (a *Account) LastLoginAt() *time.Time       { return a.lastLoginAt }
func (a *Account) CreatedAt() time.Time          { return a.createdAt }
func (a *Account) UpdatedAt() time.Time          { return a.updatedAt }
func (a *Account) Version() int                  { return a.version }

// SetID sets the account ID (persistence layer use only)
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Account) touch() {
	a.updatedAt = time.Now()
	a.version++
}

// ActivateIfEligible transitions a pending_verification account to active
// when it is provisioned and its email has been verified. Returns true when
// a transition happened. This is the only status mutation login performs,
// made explicit so callers invoke it transactionally.
func (a *Account) ActivateIfEligible() bool {
	if !a.status.IsPendingVerification() {
		return false
	}
	if !a.provisioned || !a.IsEmailVerified() {
		return false
	}
	a.status = vo.StatusActive
	a.touch()
	return true
}

// Activate moves an account to active (admin action).
func (a *Account) Activate() error {
	if a.status.IsActive() {
		return nil
	}
	if err := a.status.TransitionTo(vo.StatusActive); err != nil {
		return err
	}
	a.lockReason = nil
	a.lockedUntil = nil
	a.failedLoginAttempts = 0
	a.touch()
	return nil
}

// Deactivate parks the account; it can no longer authenticate.
func (a *Account) Deactivate() error {
	if a.status.IsInactive() {
		return nil
	}
	if err := a.status.TransitionTo(vo.StatusInactive); err != nil {
		return err
	}
	a.touch()
	return nil
}

// Suspend suspends the account for a policy violation.
func (a *Account) Suspend(reason string) error {
	if reason == "" {
		return fmt.Errorf("suspension reason is required")
	}
	if a.status.IsSuspended() {
		return nil
	}
	if err := a.status.TransitionTo(vo.StatusSuspended); err != nil {
		return err
	}
	a.lockReason = &reason
	a.touch()
	return nil
}

// Lock locks the account. A locked account must carry either a reason or
// an expiry; both absent is rejected.
func (a *Account) Lock(reason string, until *time.Time) error {
	if reason == "" && until == nil {
		return fmt.Errorf("a lock requires a reason or an expiry")
	}
	if !a.status.IsLocked() {
		if err := a.status.TransitionTo(vo.StatusLocked); err != nil {
			return err
		}
	}
	if reason != "" {
		a.lockReason = &reason
	}
	a.lockedUntil = until
	a.touch()
	return nil
}

// Unlock clears the lock and restores the account to active.
func (a *Account) Unlock() error {
	if !a.status.IsLocked() {
		return nil
	}
	if err := a.status.TransitionTo(vo.StatusActive); err != nil {
		return err
	}
	a.lockReason = nil
	a.lockedUntil = nil
	a.failedLoginAttempts = 0
	a.touch()
	return nil
}

// RequirePasswordChange flags the account for a forced password change on
// next login.
func (a *Account) RequirePasswordChange() {
	if a.mustChangePassword {
		return
	}
	a.mustChangePassword = true
	a.touch()
}

// MarkLoggedIn records a successful authentication.
func (a *Account) MarkLoggedIn() {
	now := time.Now()
	a.lastLoginAt = &now
	a.touch()
}

// UpdateProfile changes mutable contact fields.
func (a *Account) UpdateProfile(name, phone string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if a.name == name && a.phone == phone {
		return nil
	}
	a.name = name
	a.phone = phone
	a.touch()
	return nil
}

// AssignRole replaces the primary role.
func (a *Account) AssignRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if a.role == role {
		return nil
	}
	a.role = role
	a.touch()
	return nil
}
