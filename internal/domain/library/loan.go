package library

import (
	"fmt"
	"time"
)

// Loan is one checkout of one copy by one student. FineAmount is fixed at
// return time in minor currency units.
type Loan struct {
	id         uint
	bookID     uint
	studentID  uint
	borrowedAt time.Time
	dueDate    time.Time
	returnedAt *time.Time
	fineAmount int64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewLoan(bookID, studentID uint, dueDate time.Time) (*Loan, error) {
	if bookID == 0 {
		return nil, fmt.Errorf("book ID is required")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	now := time.Now()
	if !dueDate.After(now) {
		return nil, fmt.Errorf("due date must be in the future")
	}

	return &Loan{
		bookID:     bookID,
		studentID:  studentID,
		borrowedAt: now,
		dueDate:    dueDate,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type LoanData struct {
	ID         uint
	BookID     uint
	StudentID  uint
	BorrowedAt time.Time
	DueDate    time.Time
	ReturnedAt *time.Time
	FineAmount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructLoan(data LoanData) (*Loan, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("loan ID cannot be zero")
	}
	return &Loan{
		id:         data.ID,
		bookID:     data.BookID,
		studentID:  data.StudentID,
		borrowedAt: data.BorrowedAt,
		dueDate:    data.DueDate,
		returnedAt: data.ReturnedAt,
		fineAmount: data.FineAmount,
		createdAt:  data.CreatedAt,
		updatedAt:  data.UpdatedAt,
	}, nil
}

func (l *Loan) ID() uint               { return l.id }
func (l *Loan) BookID() uint           { return l.bookID }
func (l *Loan) StudentID() uint        { return l.studentID }
func (l *Loan) BorrowedAt() time.Time  { return l.borrowedAt }
func (l *Loan) DueDate() time.Time     { return l.dueDate }
func (l *Loan) ReturnedAt() *time.Time { return l.returnedAt }
func (l *Loan) FineAmount() int64      { return l.fineAmount }
func (l *Loan) CreatedAt() time.Time   { return l.createdAt }
func (l *Loan) UpdatedAt() time.Time   { return l.updatedAt }

func (l *Loan) IsReturned() bool {
	return l.returnedAt != nil
}

func (l *Loan) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("loan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("loan ID cannot be zero")
	}
	l.id = id
	return nil
}

// OverdueDays counts whole days past the due date, rounding any partial
// day up. Zero when on time or already returned before the due date.
func (l *Loan) OverdueDays(asOf time.Time) int {
	if !asOf.After(l.dueDate) {
		return 0
	}
	elapsed := asOf.Sub(l.dueDate)
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Return closes the loan and fixes the fine at finePerDay for each overdue
// day.
func (l *Loan) Return(at time.Time, finePerDay int64) error {
	if l.IsReturned() {
		return ErrAlreadyReturned
	}
	l.fineAmount = int64(l.OverdueDays(at)) * finePerDay
	l.returnedAt = &at
	l.updatedAt = time.Now()
	return nil
}
