package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/library"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/errors"
)

type mockBookRepository struct {
	CreateFunc    func(ctx context.Context, b *library.Book) error
	GetByIDFunc   func(ctx context.Context, id uint) (*library.Book, error)
	GetByISBNFunc func(ctx context.Context, isbn string) (*library.Book, error)
	UpdateFunc    func(ctx context.Context, b *library.Book) error
	ListFunc      func(ctx context.Context, filter library.BookFilter) ([]*library.Book, int64, error)
}

func (m *mockBookRepository) Create(ctx context.Context, b *library.Book) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookRepository) GetByID(ctx context.Context, id uint) (*library.Book, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("book not found")
}

func (m *mockBookRepository) GetByISBN(ctx context.Context, isbn string) (*library.Book, error) {
	if m.GetByISBNFunc != nil {
		return m.GetByISBNFunc(ctx, isbn)
	}
	return nil, nil
}

func (m *mockBookRepository) Update(ctx context.Context, b *library.Book) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBookRepository) List(ctx context.Context, filter library.BookFilter) ([]*library.Book, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLoanRepository struct {
	CreateFunc             func(ctx context.Context, l *library.Loan) error
	GetByIDFunc            func(ctx context.Context, id uint) (*library.Loan, error)
	UpdateFunc             func(ctx context.Context, l *library.Loan) error
	ListOpenByStudentFunc  func(ctx context.Context, studentID uint) ([]*library.Loan, error)
	CountOpenByStudentFunc func(ctx context.Context, studentID uint) (int64, error)
	ListOverdueFunc        func(ctx context.Context, asOf time.Time) ([]*library.Loan, error)
}

func (m *mockLoanRepository) Create(ctx context.Context, l *library.Loan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	return nil
}

func (m *mockLoanRepository) GetByID(ctx context.Context, id uint) (*library.Loan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("loan not found")
}

func (m *mockLoanRepository) Update(ctx context.Context, l *library.Loan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *mockLoanRepository) ListOpenByStudent(ctx context.Context, studentID uint) ([]*library.Loan, error) {
	if m.ListOpenByStudentFunc != nil {
		return m.ListOpenByStudentFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *mockLoanRepository) CountOpenByStudent(ctx context.Context, studentID uint) (int64, error) {
	if m.CountOpenByStudentFunc != nil {
		return m.CountOpenByStudentFunc(ctx, studentID)
	}
	return 0, nil
}

func (m *mockLoanRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*library.Loan, error) {
	if m.ListOverdueFunc != nil {
		return m.ListOverdueFunc(ctx, asOf)
	}
	return nil, nil
}

type mockStudentRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*student.Student, error)
}

func (m *mockStudentRepository) Create(ctx context.Context, s *student.Student) error { return nil }

func (m *mockStudentRepository) GetByID(ctx context.Context, id uint) (*student.Student, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("student not found")
}

func (m *mockStudentRepository) GetByAdmissionNumber(ctx context.Context, admissionNumber string) (*student.Student, error) {
	return nil, nil
}

func (m *mockStudentRepository) Update(ctx context.Context, s *student.Student) error { return nil }

func (m *mockStudentRepository) List(ctx context.Context, filter student.ListFilter) ([]*student.Student, int64, error) {
	return nil, 0, nil
}

func (m *mockStudentRepository) ListByClass(ctx context.Context, class, section string) ([]*student.Student, error) {
	return nil, nil
}

func (m *mockStudentRepository) ListByParentAccountID(ctx context.Context, accountID uint) ([]*student.Student, error) {
	return nil, nil
}
