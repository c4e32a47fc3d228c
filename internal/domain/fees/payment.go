package fees

import "time"

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodUPI          PaymentMethod = "upi"
	MethodCheque       PaymentMethod = "cheque"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodBankTransfer, MethodUPI, MethodCheque:
		return true
	}
	return false
}

// Payment records one offline payment against an invoice. ReceiptNumber is
// assigned at recording time and printed on the receipt PDF.
type Payment struct {
	ID            uint
	InvoiceID     uint
	Amount        int64
	Method        PaymentMethod
	Reference     string
	ReceiptNumber string
	PaidAt        time.Time
	CreatedAt     time.Time
}
