package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/library"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/logger"
)

func testSchoolConfig() config.SchoolConfig {
	return config.SchoolConfig{
		Name:              "Test High School",
		LibraryFinePerDay: 500,
		LibraryLoanLimit:  3,
		LibraryLoanDays:   14,
	}
}

func enrolledStudent(t *testing.T, id uint) *student.Student {
	t.Helper()
	s, err := student.NewStudent("ADM-100", "Asha", "Rao", "10", "A", 12)
	require.NoError(t, err)
	require.NoError(t, s.SetID(id))
	return s
}

func stockedBook(t *testing.T, id uint, copies int) *library.Book {
	t.Helper()
	b, err := library.NewBook("978-0134190440", "The Go Programming Language", "Donovan & Kernighan", copies)
	require.NoError(t, err)
	require.NoError(t, b.SetID(id))
	return b
}

func TestBorrowBookDecrementsStockAndSetsDueDate(t *testing.T) {
	s := enrolledStudent(t, 5)
	book := stockedBook(t, 9, 2)

	var createdLoan *library.Loan
	var savedBook *library.Book
	uc := NewBorrowBookUseCase(
		&mockBookRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*library.Book, error) { return book, nil },
			UpdateFunc:  func(ctx context.Context, b *library.Book) error { savedBook = b; return nil },
		},
		&mockLoanRepository{
			CreateFunc: func(ctx context.Context, l *library.Loan) error { createdLoan = l; return nil },
		},
		&mockStudentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*student.Student, error) { return s, nil },
		},
		testSchoolConfig(),
		logger.NewLogger(),
	)

	loan, err := uc.Execute(context.Background(), BorrowBookCommand{BookID: 9, StudentID: 5})
	require.NoError(t, err)

	assert.Equal(t, 1, book.AvailableCopies())
	require.NotNil(t, savedBook)
	require.NotNil(t, createdLoan)
	expectedDue := time.Now().AddDate(0, 0, 14)
	assert.WithinDuration(t, expectedDue, loan.DueDate(), time.Minute)
}

func TestBorrowBookRefusedAtLoanLimit(t *testing.T) {
	s := enrolledStudent(t, 5)
	book := stockedBook(t, 9, 2)

	uc := NewBorrowBookUseCase(
		&mockBookRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*library.Book, error) { return book, nil },
		},
		&mockLoanRepository{
			CountOpenByStudentFunc: func(ctx context.Context, studentID uint) (int64, error) { return 3, nil },
		},
		&mockStudentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*student.Student, error) { return s, nil },
		},
		testSchoolConfig(),
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), BorrowBookCommand{BookID: 9, StudentID: 5})
	require.Error(t, err)
	assert.Equal(t, 2, book.AvailableCopies(), "stock must be untouched")
}

func TestBorrowBookRefusedWhenNoCopies(t *testing.T) {
	s := enrolledStudent(t, 5)
	book := stockedBook(t, 9, 1)
	require.NoError(t, book.Checkout())

	uc := NewBorrowBookUseCase(
		&mockBookRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*library.Book, error) { return book, nil },
		},
		&mockLoanRepository{},
		&mockStudentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*student.Student, error) { return s, nil },
		},
		testSchoolConfig(),
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), BorrowBookCommand{BookID: 9, StudentID: 5})
	require.Error(t, err)
}

func TestBorrowBookRefusedForWithdrawnStudent(t *testing.T) {
	s := enrolledStudent(t, 5)
	require.NoError(t, s.ChangeStatus(student.StatusWithdrawn))

	uc := NewBorrowBookUseCase(
		&mockBookRepository{},
		&mockLoanRepository{},
		&mockStudentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*student.Student, error) { return s, nil },
		},
		testSchoolConfig(),
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), BorrowBookCommand{BookID: 9, StudentID: 5})
	require.Error(t, err)
}

func TestReturnBookOnTimeHasNoFine(t *testing.T) {
	book := stockedBook(t, 9, 2)
	require.NoError(t, book.Checkout())
	loan, err := library.NewLoan(9, 5, time.Now().Add(7*24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, loan.SetID(3))

	uc := NewReturnBookUseCase(
		&mockBookRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*library.Book, error) { return book, nil },
		},
		&mockLoanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*library.Loan, error) { return loan, nil },
		},
		testSchoolConfig(),
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), ReturnBookCommand{LoanID: 3})
	require.NoError(t, err)

	assert.Zero(t, result.FineAmount)
	assert.Zero(t, result.OverdueDays)
	assert.True(t, loan.IsReturned())
	assert.Equal(t, 2, book.AvailableCopies())
}

func TestReturnBookOverdueChargesPerDay(t *testing.T) {
	book := stockedBook(t, 9, 2)
	require.NoError(t, book.Checkout())
	loan, err := library.ReconstructLoan(library.LoanData{
		ID:         3,
		BookID:     9,
		StudentID:  5,
		BorrowedAt: time.Now().Add(-20 * 24 * time.Hour),
		// 71 hours overdue: partial third day rounds up to 3.
		DueDate: time.Now().Add(-71 * time.Hour),
	})
	require.NoError(t, err)

	uc := NewReturnBookUseCase(
		&mockBookRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*library.Book, error) { return book, nil },
		},
		&mockLoanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*library.Loan, error) { return loan, nil },
		},
		testSchoolConfig(),
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), ReturnBookCommand{LoanID: 3})
	require.NoError(t, err)

	// 3 days overdue at 500 minor units per day.
	assert.Equal(t, 3, result.OverdueDays)
	assert.Equal(t, int64(1500), result.FineAmount)
}

func TestReturnBookTwiceIsRejected(t *testing.T) {
	book := stockedBook(t, 9, 2)
	loan, err := library.NewLoan(9, 5, time.Now().Add(7*24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, loan.SetID(3))
	require.NoError(t, loan.Return(time.Now(), 500))

	uc := NewReturnBookUseCase(
		&mockBookRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*library.Book, error) { return book, nil },
		},
		&mockLoanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*library.Loan, error) { return loan, nil },
		},
		testSchoolConfig(),
		logger.NewLogger(),
	)

	_, err = uc.Execute(context.Background(), ReturnBookCommand{LoanID: 3})
	require.Error(t, err)
}

func TestAddBookTopsUpExistingISBN(t *testing.T) {
	book := stockedBook(t, 9, 2)

	uc := NewAddBookUseCase(
		&mockBookRepository{
			GetByISBNFunc: func(ctx context.Context, isbn string) (*library.Book, error) { return book, nil },
		},
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), AddBookCommand{
		ISBN:   book.ISBN(),
		Title:  book.Title(),
		Copies: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(9), result.ID())
	assert.Equal(t, 5, result.TotalCopies())
	assert.Equal(t, 5, result.AvailableCopies())
}
