package fees

import "errors"

var (
	ErrInvoiceCancelled = errors.New("invoice is cancelled")
	ErrAlreadyPaid      = errors.New("invoice is already paid in full")
	ErrOverpayment      = errors.New("payment exceeds outstanding balance")
)
