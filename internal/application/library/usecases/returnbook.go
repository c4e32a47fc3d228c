package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/library"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type ReturnBookCommand struct {
	LoanID uint
}

type ReturnBookResult struct {
	Loan        *library.Loan
	FineAmount  int64
	OverdueDays int
}

// ReturnBookUseCase closes a loan and restocks the copy. The fine is
// fixed at return time from the configured per-day rate.
type ReturnBookUseCase struct {
	bookRepo library.BookRepository
	loanRepo library.LoanRepository
	school   config.SchoolConfig
	logger   logger.Interface
}

func NewReturnBookUseCase(
	bookRepo library.BookRepository,
	loanRepo library.LoanRepository,
	school config.SchoolConfig,
	log logger.Interface,
) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		bookRepo: bookRepo,
		loanRepo: loanRepo,
		school:   school,
		logger:   log,
	}
}

func (uc *ReturnBookUseCase) Execute(ctx context.Context, cmd ReturnBookCommand) (*ReturnBookResult, error) {
	loan, err := uc.loanRepo.GetByID(ctx, cmd.LoanID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	overdueDays := loan.OverdueDays(now)
	if err := loan.Return(now, uc.school.LibraryFinePerDay); err != nil {
		if err == library.ErrAlreadyReturned {
			return nil, errors.NewConflictError(err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	book, err := uc.bookRepo.GetByID(ctx, loan.BookID())
	if err != nil {
		return nil, err
	}
	if err := book.ReturnCopy(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}
	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	uc.logger.Infow("book returned",
		"loan_id", loan.ID(),
		"book_id", loan.BookID(),
		"overdue_days", overdueDays,
		"fine", loan.FineAmount())
	return &ReturnBookResult{
		Loan:        loan,
		FineAmount:  loan.FineAmount(),
		OverdueDays: overdueDays,
	}, nil
}

// ListStudentLoansUseCase returns a student's open loans for the student
// and parent views.
type ListStudentLoansUseCase struct {
	loanRepo library.LoanRepository
}

func NewListStudentLoansUseCase(loanRepo library.LoanRepository) *ListStudentLoansUseCase {
	return &ListStudentLoansUseCase{loanRepo: loanRepo}
}

func (uc *ListStudentLoansUseCase) Execute(ctx context.Context, studentID uint) ([]*library.Loan, error) {
	return uc.loanRepo.ListOpenByStudent(ctx, studentID)
}

// ListOverdueLoansUseCase feeds the librarian's chase list.
type ListOverdueLoansUseCase struct {
	loanRepo library.LoanRepository
}

func NewListOverdueLoansUseCase(loanRepo library.LoanRepository) *ListOverdueLoansUseCase {
	return &ListOverdueLoansUseCase{loanRepo: loanRepo}
}

func (uc *ListOverdueLoansUseCase) Execute(ctx context.Context, asOf time.Time) ([]*library.Loan, error) {
	return uc.loanRepo.ListOverdue(ctx, asOf)
}
