package account

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// LoginMethod enumerates how a session was established.
type LoginMethod string

const (
	LoginMethodPassword LoginMethod = "password"
)

// EndReason enumerates why a session ended.
type EndReason string

const (
	EndReasonUserLogout      EndReason = "user_logout"
	EndReasonExpired         EndReason = "expired"
	EndReasonAdminRevoked    EndReason = "admin_revoked"
	EndReasonPasswordChanged EndReason = "password_changed"
)

// Session mirrors one established login session. A fresh session always
// carries a newly generated identifier, never one supplied by the client,
// which is the fixation mitigation: the persisted ID matches the
// regenerated token, not whatever existed before login.
type Session struct {
	ID               string
	AccountID        uint
	IPAddress        string
	UserAgent        string
	LoginMethod      LoginMethod
	TokenHash        string
	RefreshTokenHash string
	Active           bool
	ExpiresAt        time.Time
	LastActivityAt   time.Time
	StartedAt        time.Time
	EndedAt          *time.Time
	EndReason        *EndReason
}

func NewSession(accountID uint, ipAddress, userAgent string, method LoginMethod, expiresAt time.Time) (*Session, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := time.Now()
	return &Session{
		ID:             id,
		AccountID:      accountID,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		LoginMethod:    method,
		Active:         true,
		ExpiresAt:      expiresAt,
		LastActivityAt: now,
		StartedAt:      now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

func (s *Session) UpdateActivity() {
	s.LastActivityAt = time.Now()
}

// End deactivates the session with the given reason. Ending an already
// ended session is a no-op, which keeps logout idempotent.
func (s *Session) End(reason EndReason) {
	if !s.Active {
		return
	}
	now := time.Now()
	s.Active = false
	s.EndedAt = &now
	s.EndReason = &reason
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

type SessionRepository interface {
	Create(session *Session) error
	GetByID(sessionID string) (*Session, error)
	// GetActiveByID returns the session only when it is still active.
	GetActiveByID(sessionID string) (*Session, error)
	GetByAccountID(accountID uint) ([]*Session, error)
	GetByRefreshTokenHash(refreshTokenHash string) (*Session, error)
	Update(session *Session) error
	// EndByAccountID ends every active session of the account.
	EndByAccountID(accountID uint, reason EndReason) error
	// EndExpired marks expired-but-active sessions as ended and returns
	// how many were swept.
	EndExpired() (int64, error)
}
