package account

import (
	"errors"
	"fmt"
	"time"
)

// State-check rejections. These are domain-level sentinels; the application
// layer maps them to user-facing messages.
var (
	ErrSuspended       = errors.New("account is suspended")
	ErrInactive        = errors.New("account is inactive")
	ErrNotProvisioned  = errors.New("account is not provisioned")
	ErrEmailUnverified = errors.New("email address is not verified")
	ErrNoPassword      = errors.New("account has no password set")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// LockedError reports a locked account. Until is nil for locks without an
// expiry (administrator intervention required).
type LockedError struct {
	Until *time.Time
}

func (e *LockedError) Error() string {
	if e.Until == nil {
		return "account is locked"
	}
	return fmt.Sprintf("account is locked until %s", e.Until.Format(time.RFC3339))
}

// RemainingMinutes returns the minutes until the lock expires, rounded up,
// or 0 when the lock has no expiry.
func (e *LockedError) RemainingMinutes() int {
	if e.Until == nil {
		return 0
	}
	remaining := time.Until(*e.Until)
	if remaining <= 0 {
		return 0
	}
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	return minutes
}

// IsLockedError extracts a LockedError from the error chain.
func IsLockedError(err error) (*LockedError, bool) {
	var lockedErr *LockedError
	if errors.As(err, &lockedErr) {
		return lockedErr, true
	}
	return nil, false
}
