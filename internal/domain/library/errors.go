package library

import "errors"

var (
	ErrNoCopiesAvailable = errors.New("no copies available")
	ErrAlreadyReturned   = errors.New("loan is already returned")
	ErrLoanLimitReached  = errors.New("student has reached the loan limit")
)
