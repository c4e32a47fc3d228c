package account

import "time"

// ActivityType enumerates security-relevant account events.
type ActivityType string

const (
	ActivityLoginSuccess           ActivityType = "login_success"
	ActivityLoginFailed            ActivityType = "login_failed"
	ActivityLogout                 ActivityType = "logout"
	ActivityPasswordChanged        ActivityType = "password_changed"
	ActivityPasswordResetRequested ActivityType = "password_reset_requested"
	ActivityPasswordResetCompleted ActivityType = "password_reset_completed"
	ActivitySecurityEvent          ActivityType = "security_event"
)

// Failure reasons recorded in the metadata of login_failed entries.
const (
	FailureReasonUserNotFound    = "user_not_found"
	FailureReasonInvalidPassword = "invalid_password"
	FailureReasonAccountState    = "account_locked_or_inactive"
	FailureReasonRateLimited     = "rate_limited"
)

// ActivityEntry is one append-only audit record. AccountID is nil for
// events without a resolvable account (e.g. unknown identifier).
type ActivityEntry struct {
	ID          uint
	AccountID   *uint
	Type        ActivityType
	Description string
	IPAddress   string
	UserAgent   string
	Metadata    map[string]any
	CreatedAt   time.Time
}

// NewActivityEntry builds an audit record; CreatedAt is assigned by the
// store on append.
func NewActivityEntry(accountID *uint, activityType ActivityType, description, ip, userAgent string, metadata map[string]any) *ActivityEntry {
	return &ActivityEntry{
		AccountID:   accountID,
		Type:        activityType,
		Description: description,
		IPAddress:   ip,
		UserAgent:   userAgent,
		Metadata:    metadata,
	}
}

// ActivityRepository is append-only: entries are never updated or deleted
// by the authentication flows.
type ActivityRepository interface {
	Append(entry *ActivityEntry) error
	ListByAccountID(accountID uint, limit int) ([]*ActivityEntry, error)
	ListRecent(limit int) ([]*ActivityEntry, error)
}
