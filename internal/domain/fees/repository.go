package fees

import (
	"context"
	"time"
)

type ListFilter struct {
	StudentID uint
	Status    string
	Offset    int
	Limit     int
}

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	// GetByID loads the invoice with its payments.
	GetByID(ctx context.Context, id uint) (*Invoice, error)
	// Update persists the invoice together with any newly recorded
	// payments in one transaction.
	Update(ctx context.Context, inv *Invoice) error
	List(ctx context.Context, filter ListFilter) ([]*Invoice, int64, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*Invoice, error)
	// ListOverdueCandidates returns pending/partial invoices due before
	// asOf, for the overdue sweep.
	ListOverdueCandidates(ctx context.Context, asOf time.Time) ([]*Invoice, error)
	// HasUnsettledOverdue reports whether the student has any overdue
	// invoice, which blocks admit-card issue.
	HasUnsettledOverdue(ctx context.Context, studentID uint) (bool, error)
	GetPaymentByReceiptNumber(ctx context.Context, receiptNumber string) (*Payment, *Invoice, error)
}
