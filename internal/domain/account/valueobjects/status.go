package valueobjects

import (
	"fmt"
	"strings"
)

// Status represents the account lifecycle status value object
type Status string

const (
	StatusActive              Status = "active"
	StatusInactive            Status = "inactive"
	StatusPendingVerification Status = "pending_verification"
	StatusSuspended           Status = "suspended"
	StatusLocked              Status = "locked"
)

// ValidStatuses contains all valid status values
var ValidStatuses = map[Status]bool{
	StatusActive:              true,
	StatusInactive:            true,
	StatusPendingVerification: true,
	StatusSuspended:           true,
	StatusLocked:              true,
}

// StatusTransitions defines allowed status transitions. Accounts are never
// hard-deleted; inactive is the terminal-ish parking state.
var StatusTransitions = map[Status][]Status{
	StatusPendingVerification: {
		StatusActive,
		StatusInactive,
		StatusSuspended,
		StatusLocked,
	},
	StatusActive: {
		StatusInactive,
		StatusSuspended,
		StatusLocked,
	},
	StatusInactive: {
		StatusActive,
		StatusSuspended,
	},
	StatusSuspended: {
		StatusActive,
		StatusInactive,
	},
	StatusLocked: {
		StatusActive,
		StatusInactive,
		StatusSuspended,
	},
}

// NewStatus creates a Status value object, defaulting empty input to
// pending_verification for newly provisioned accounts.
func NewStatus(value string) (*Status, error) {
	if value == "" {
		status := StatusPendingVerification
		return &status, nil
	}

	status := Status(value)
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", value)
	}

	return &status, nil
}

// ParseStatus parses a string to Status (case-insensitive)
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", fmt.Errorf("status cannot be empty")
	}

	status := Status(normalized)
	if !ValidStatuses[status] {
		return "", fmt.Errorf("invalid status: %s", value)
	}

	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) IsInactive() bool {
	return s == StatusInactive
}

func (s Status) IsPendingVerification() bool {
	return s == StatusPendingVerification
}

func (s Status) IsSuspended() bool {
	return s == StatusSuspended
}

func (s Status) IsLocked() bool {
	return s == StatusLocked
}

// CanTransitionTo checks if the current status can transition to the target
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range StatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo attempts to transition to a new status
func (s *Status) TransitionTo(target Status) error {
	if !s.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition from %s to %s", s.String(), target.String())
	}
	*s = target
	return nil
}

// MarshalJSON implements json.Marshaler
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Status) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	status, err := NewStatus(str)
	if err != nil {
		return err
	}

	*s = *status
	return nil
}
