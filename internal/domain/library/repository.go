package library

import (
	"context"
	"time"
)

type BookFilter struct {
	Search string
	Offset int
	Limit  int
}

type BookRepository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id uint) (*Book, error)
	// GetByISBN returns (nil, nil) when no book matches.
	GetByISBN(ctx context.Context, isbn string) (*Book, error)
	Update(ctx context.Context, b *Book) error
	List(ctx context.Context, filter BookFilter) ([]*Book, int64, error)
}

type LoanRepository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint) (*Loan, error)
	Update(ctx context.Context, l *Loan) error
	ListOpenByStudent(ctx context.Context, studentID uint) ([]*Loan, error)
	CountOpenByStudent(ctx context.Context, studentID uint) (int64, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]*Loan, error)
}
