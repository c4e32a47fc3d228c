package fees

import (
	"fmt"
	"strings"
	"time"
)

type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "pending"
	StatusPartial   InvoiceStatus = "partial"
	StatusPaid      InvoiceStatus = "paid"
	StatusOverdue   InvoiceStatus = "overdue"
	StatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPartial, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Invoice is one fee demand against a student. Amounts are minor currency
// units (paise); arithmetic stays in integers.
type Invoice struct {
	id         uint
	studentID  uint
	title      string
	amountDue  int64
	amountPaid int64
	dueDate    time.Time
	status     InvoiceStatus
	payments   []*Payment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewInvoice(studentID uint, title string, amountDue int64, dueDate time.Time) (*Invoice, error) {
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if amountDue <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if dueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}

	now := time.Now()
	return &Invoice{
		studentID: studentID,
		title:     strings.TrimSpace(title),
		amountDue: amountDue,
		dueDate:   dueDate,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

type InvoiceData struct {
	ID         uint
	StudentID  uint
	Title      string
	AmountDue  int64
	AmountPaid int64
	DueDate    time.Time
	Status     InvoiceStatus
	Payments   []*Payment
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func Reconstruct(data InvoiceData) (*Invoice, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("invoice ID cannot be zero")
	}
	if !data.Status.IsValid() {
		return nil, fmt.Errorf("invalid invoice status: %s", data.Status)
	}
	return &Invoice{
		id:         data.ID,
		studentID:  data.StudentID,
		title:      data.Title,
		amountDue:  data.AmountDue,
		amountPaid: data.AmountPaid,
		dueDate:    data.DueDate,
		status:     data.Status,
		payments:   data.Payments,
		createdAt:  data.CreatedAt,
		updatedAt:  data.UpdatedAt,
	}, nil
}

func (i *Invoice) ID() uint              { return i.id }
func (i *Invoice) StudentID() uint       { return i.studentID }
func (i *Invoice) Title() string         { return i.title }
func (i *Invoice) AmountDue() int64      { return i.amountDue }
func (i *Invoice) AmountPaid() int64     { return i.amountPaid }
func (i *Invoice) DueDate() time.Time    { return i.dueDate }
func (i *Invoice) Status() InvoiceStatus { return i.status }
func (i *Invoice) CreatedAt() time.Time  { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time  { return i.updatedAt }

func (i *Invoice) Payments() []*Payment {
	out := make([]*Payment, len(i.payments))
	copy(out, i.payments)
	return out
}

func (i *Invoice) Balance() int64 {
	return i.amountDue - i.amountPaid
}

// IsSettled reports whether the invoice no longer blocks fee clearance.
func (i *Invoice) IsSettled() bool {
	return i.status == StatusPaid || i.status == StatusCancelled
}

func (i *Invoice) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("invoice ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("invoice ID cannot be zero")
	}
	i.id = id
	return nil
}

// RecordPayment applies a payment and moves the invoice to partial or
// paid. Paying an overdue invoice in full settles it like any other.
func (i *Invoice) RecordPayment(amount int64, method PaymentMethod, reference, receiptNumber string, paidAt time.Time) (*Payment, error) {
	if i.status == StatusCancelled {
		return nil, ErrInvoiceCancelled
	}
	if i.status == StatusPaid {
		return nil, ErrAlreadyPaid
	}
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if amount > i.Balance() {
		return nil, ErrOverpayment
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}

	p := &Payment{
		InvoiceID:     i.id,
		Amount:        amount,
		Method:        method,
		Reference:     reference,
		ReceiptNumber: receiptNumber,
		PaidAt:        paidAt,
	}
	i.payments = append(i.payments, p)
	i.amountPaid += amount
	if i.Balance() == 0 {
		i.status = StatusPaid
	} else {
		i.status = StatusPartial
	}
	i.updatedAt = time.Now()
	return p, nil
}

// MarkOverdue flags unpaid invoices past their due date. Returns true when
// the status actually changed so the sweep can count its work.
func (i *Invoice) MarkOverdue(asOf time.Time) bool {
	if i.status != StatusPending && i.status != StatusPartial {
		return false
	}
	if !asOf.After(i.dueDate) {
		return false
	}
	i.status = StatusOverdue
	i.updatedAt = time.Now()
	return true
}

func (i *Invoice) Cancel() error {
	if i.status == StatusPaid {
		return fmt.Errorf("cannot cancel a paid invoice")
	}
	if i.amountPaid > 0 {
		return fmt.Errorf("cannot cancel an invoice with recorded payments")
	}
	i.status = StatusCancelled
	i.updatedAt = time.Now()
	return nil
}
