package usecases

import (
	"context"
	"time"

	"scholaris/internal/shared/authorization"
)

// TokenPair is an access/refresh token pair with the access expiry in
// seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims is the subset of verified token claims the use cases need.
type TokenClaims struct {
	AccountID uint
	SessionID string
	Role      authorization.UserRole
	TokenType string
}

// TokenService signs, verifies and fingerprints session tokens.
type TokenService interface {
	Generate(accountID uint, sessionID string, role authorization.UserRole) (*TokenPair, error)
	Verify(token string) (*TokenClaims, error)
	// Hash returns the digest under which a token is stored on its
	// session row.
	Hash(token string) string
}

// LoginRateLimiter gates repeated login attempts per identifier+ip before
// any account lookup happens.
type LoginRateLimiter interface {
	Allow(ctx context.Context, identifier, ip string) (bool, time.Duration, error)
	Clear(ctx context.Context, identifier, ip string) error
}

// EmailSender delivers account lifecycle mail. Sending failures are logged
// but never fail the triggering operation.
type EmailSender interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}
