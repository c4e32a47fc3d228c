package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"scholaris/internal/domain/fees"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type RecordPaymentCommand struct {
	InvoiceID uint
	Amount    int64
	Method    string
	Reference string
	PaidAt    time.Time
}

type RecordPaymentResult struct {
	Invoice *fees.Invoice
	Payment *fees.Payment
}

// RecordPaymentUseCase applies one offline payment to an invoice. The
// receipt number is assigned here and is what the printed receipt carries.
type RecordPaymentUseCase struct {
	feeRepo fees.Repository
	logger  logger.Interface
}

func NewRecordPaymentUseCase(feeRepo fees.Repository, log logger.Interface) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		feeRepo: feeRepo,
		logger:  log,
	}
}

func (uc *RecordPaymentUseCase) Execute(ctx context.Context, cmd RecordPaymentCommand) (*RecordPaymentResult, error) {
	inv, err := uc.feeRepo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		return nil, err
	}

	paidAt := cmd.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	receiptNumber := newReceiptNumber(cmd.InvoiceID, paidAt)
	payment, err := inv.RecordPayment(cmd.Amount, fees.PaymentMethod(cmd.Method), cmd.Reference, receiptNumber, paidAt)
	if err != nil {
		switch err {
		case fees.ErrInvoiceCancelled, fees.ErrAlreadyPaid, fees.ErrOverpayment:
			return nil, errors.NewConflictError(err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.feeRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	uc.logger.Infow("payment recorded",
		"invoice_id", inv.ID(),
		"receipt_number", receiptNumber,
		"amount", cmd.Amount,
		"status", string(inv.Status()))
	return &RecordPaymentResult{Invoice: inv, Payment: payment}, nil
}

// newReceiptNumber yields e.g. RCP-20260901-000031-9f2c1ab4; the random
// suffix keeps numbers unique without a counter table.
func newReceiptNumber(invoiceID uint, paidAt time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("RCP-%s-%06d-%s", paidAt.Format("20060102"), invoiceID, suffix)
}
