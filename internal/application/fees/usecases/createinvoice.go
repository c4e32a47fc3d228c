package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/fees"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type CreateInvoiceCommand struct {
	StudentID uint
	Title     string
	AmountDue int64
	DueDate   time.Time
}

type CreateInvoiceUseCase struct {
	feeRepo     fees.Repository
	studentRepo student.Repository
	logger      logger.Interface
}

func NewCreateInvoiceUseCase(
	feeRepo fees.Repository,
	studentRepo student.Repository,
	log logger.Interface,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
		logger:      log,
	}
}

func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, cmd CreateInvoiceCommand) (*fees.Invoice, error) {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if !s.IsEnrolled() {
		return nil, errors.NewValidationError("cannot invoice a student who is not enrolled")
	}

	inv, err := fees.NewInvoice(cmd.StudentID, cmd.Title, cmd.AmountDue, cmd.DueDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.feeRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	uc.logger.Infow("invoice created",
		"invoice_id", inv.ID(),
		"student_id", cmd.StudentID,
		"amount_due", cmd.AmountDue)
	return inv, nil
}

type CancelInvoiceUseCase struct {
	feeRepo fees.Repository
	logger  logger.Interface
}

func NewCancelInvoiceUseCase(feeRepo fees.Repository, log logger.Interface) *CancelInvoiceUseCase {
	return &CancelInvoiceUseCase{
		feeRepo: feeRepo,
		logger:  log,
	}
}

func (uc *CancelInvoiceUseCase) Execute(ctx context.Context, invoiceID uint) error {
	inv, err := uc.feeRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if err := inv.Cancel(); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.feeRepo.Update(ctx, inv); err != nil {
		return err
	}

	uc.logger.Infow("invoice cancelled", "invoice_id", invoiceID)
	return nil
}
