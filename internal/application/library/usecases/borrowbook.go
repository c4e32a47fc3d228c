package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/library"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type BorrowBookCommand struct {
	BookID    uint
	StudentID uint
}

// BorrowBookUseCase checks a copy out to a student. The loan limit and
// loan period come from school policy config.
type BorrowBookUseCase struct {
	bookRepo    library.BookRepository
	loanRepo    library.LoanRepository
	studentRepo student.Repository
	school      config.SchoolConfig
	logger      logger.Interface
}

func NewBorrowBookUseCase(
	bookRepo library.BookRepository,
	loanRepo library.LoanRepository,
	studentRepo student.Repository,
	school config.SchoolConfig,
	log logger.Interface,
) *BorrowBookUseCase {
	return &BorrowBookUseCase{
		bookRepo:    bookRepo,
		loanRepo:    loanRepo,
		studentRepo: studentRepo,
		school:      school,
		logger:      log,
	}
}

func (uc *BorrowBookUseCase) Execute(ctx context.Context, cmd BorrowBookCommand) (*library.Loan, error) {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if !s.IsEnrolled() {
		return nil, errors.NewValidationError("only enrolled students may borrow books")
	}

	open, err := uc.loanRepo.CountOpenByStudent(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if open >= int64(uc.school.LibraryLoanLimit) {
		return nil, errors.NewConflictError(library.ErrLoanLimitReached.Error())
	}

	book, err := uc.bookRepo.GetByID(ctx, cmd.BookID)
	if err != nil {
		return nil, err
	}
	if err := book.Checkout(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	dueDate := time.Now().AddDate(0, 0, uc.school.LibraryLoanDays)
	loan, err := library.NewLoan(cmd.BookID, cmd.StudentID, dueDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	uc.logger.Infow("book borrowed",
		"loan_id", loan.ID(),
		"book_id", cmd.BookID,
		"student_id", cmd.StudentID,
		"due_date", dueDate.Format("2006-01-02"))
	return loan, nil
}
