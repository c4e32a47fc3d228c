package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeRateLimited        ErrorType = "rate_limited"
	ErrorTypeAccountLocked      ErrorType = "account_locked"
	ErrorTypeAccountSuspended   ErrorType = "account_suspended"
	ErrorTypeAccountInactive    ErrorType = "account_inactive"
	ErrorTypeEmailUnverified    ErrorType = "email_unverified"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeSessionExpired     ErrorType = "session_expired"
)

// MsgInvalidCredentials is the single user-facing message for both
// unknown-identifier and wrong-password rejections. Keeping it in one
// constant guarantees the responses are byte-identical and do not reveal
// whether the account exists.
const MsgInvalidCredentials = "invalid email/username or password"

// AuthError represents authentication-specific errors with security context.
type AuthError struct {
	*AppError
	// ShouldLog determines if this error warrants error-level logging.
	ShouldLog bool
	// SecurityEvent indicates the rejection should land in the activity log.
	SecurityEvent bool
	// RetryAfterSeconds is set for rate-limited rejections.
	RetryAfterSeconds int
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError covers unknown identifier and wrong password
// alike; the message must not distinguish the two.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: MsgInvalidCredentials,
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewRateLimitedError carries the remaining lockout window.
func NewRateLimitedError(retryAfterSeconds int) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeRateLimited,
			Message: fmt.Sprintf("too many login attempts, please try again in %d seconds", retryAfterSeconds),
			Code:    http.StatusTooManyRequests,
		},
		ShouldLog:         false,
		SecurityEvent:     true,
		RetryAfterSeconds: retryAfterSeconds,
	}
}

// NewAccountLockedError is used for time-bound locks; remainingMinutes <= 0
// means the lock has no expiry and an administrator must intervene.
func NewAccountLockedError(remainingMinutes int) *AuthError {
	msg := "account is locked, please contact the administrator"
	if remainingMinutes > 0 {
		msg = fmt.Sprintf("account is locked, try again in %d minutes", remainingMinutes)
	}
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccountLocked,
			Message: msg,
			Code:    http.StatusForbidden,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

func NewAccountSuspendedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccountSuspended,
			Message: "account is suspended, please contact the administrator",
			Code:    http.StatusForbidden,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

func NewAccountInactiveError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccountInactive,
			Message: "account is inactive, please contact the administrator",
			Code:    http.StatusForbidden,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

func NewEmailUnverifiedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeEmailUnverified,
			Message: "please verify your email address before signing in",
			Code:    http.StatusForbidden,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

func NewTokenExpiredError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: fmt.Sprintf("%s has expired", tokenType),
			Code:    http.StatusUnauthorized,
			Details: "please login again",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: fmt.Sprintf("invalid %s", tokenType),
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewTokenInvalidOrExpiredError covers wrong, consumed and expired
// single-use tokens with one message so the response does not reveal
// which check failed.
func NewTokenInvalidOrExpiredError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: fmt.Sprintf("%s token is invalid or has expired", tokenType),
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

func NewSessionExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeSessionExpired,
			Message: "session has expired",
			Code:    http.StatusUnauthorized,
			Details: "please login again",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// IsAuthError checks if the error is an AuthError (supports wrapped errors)
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from the error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError reduces log noise from expected auth failures.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

// IsSecurityEvent reports whether the failure belongs in the activity log.
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
