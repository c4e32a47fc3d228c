package usecases

import (
	"context"

	"scholaris/internal/domain/fees"
	"scholaris/internal/domain/student"
	"scholaris/internal/infrastructure/pdf"
	"scholaris/internal/shared/config"
)

// ReceiptRenderer produces the printable receipt from assembled data.
type ReceiptRenderer interface {
	Render(data pdf.FeeReceiptData) ([]byte, error)
}

// GetReceiptUseCase regenerates a receipt PDF from the stored payment, so
// receipts can be reprinted any time after recording.
type GetReceiptUseCase struct {
	feeRepo     fees.Repository
	studentRepo student.Repository
	renderer    ReceiptRenderer
	school      config.SchoolConfig
}

func NewGetReceiptUseCase(
	feeRepo fees.Repository,
	studentRepo student.Repository,
	renderer ReceiptRenderer,
	school config.SchoolConfig,
) *GetReceiptUseCase {
	return &GetReceiptUseCase{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
		renderer:    renderer,
		school:      school,
	}
}

func (uc *GetReceiptUseCase) Execute(ctx context.Context, receiptNumber string) ([]byte, error) {
	payment, inv, err := uc.feeRepo.GetPaymentByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return nil, err
	}
	s, err := uc.studentRepo.GetByID(ctx, inv.StudentID())
	if err != nil {
		return nil, err
	}

	return uc.renderer.Render(pdf.FeeReceiptData{
		SchoolName:      uc.school.Name,
		SchoolAddress:   uc.school.Address,
		ReceiptNumber:   payment.ReceiptNumber,
		StudentName:     s.FullName(),
		AdmissionNumber: s.AdmissionNumber(),
		Class:           s.Class(),
		Section:         s.Section(),
		InvoiceTitle:    inv.Title(),
		AmountPaid:      payment.Amount,
		Method:          string(payment.Method),
		Reference:       payment.Reference,
		Balance:         inv.Balance(),
		PaidAt:          payment.PaidAt,
	})
}
