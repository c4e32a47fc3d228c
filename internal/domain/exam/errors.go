package exam

import "errors"

var (
	// ErrFeesNotCleared blocks admit-card issue while the student has
	// overdue invoices and no override was requested.
	ErrFeesNotCleared = errors.New("student has overdue fees")
	ErrAlreadyIssued  = errors.New("admit card already issued for this exam")
)
