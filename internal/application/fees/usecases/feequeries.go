package usecases

import (
	"context"

	"scholaris/internal/domain/fees"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type GetInvoiceUseCase struct {
	feeRepo fees.Repository
}

func NewGetInvoiceUseCase(feeRepo fees.Repository) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{feeRepo: feeRepo}
}

func (uc *GetInvoiceUseCase) Execute(ctx context.Context, invoiceID uint) (*fees.Invoice, error) {
	return uc.feeRepo.GetByID(ctx, invoiceID)
}

type ListInvoicesQuery struct {
	StudentID uint
	Status    string
	Offset    int
	Limit     int
}

type ListInvoicesResult struct {
	Invoices []*fees.Invoice
	Total    int64
}

type ListInvoicesUseCase struct {
	feeRepo fees.Repository
}

func NewListInvoicesUseCase(feeRepo fees.Repository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{feeRepo: feeRepo}
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, query ListInvoicesQuery) (*ListInvoicesResult, error) {
	if query.Limit <= 0 {
		query.Limit = defaultListLimit
	}
	if query.Limit > maxListLimit {
		query.Limit = maxListLimit
	}

	invoices, total, err := uc.feeRepo.List(ctx, fees.ListFilter{
		StudentID: query.StudentID,
		Status:    query.Status,
		Offset:    query.Offset,
		Limit:     query.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &ListInvoicesResult{Invoices: invoices, Total: total}, nil
}

// ListStudentInvoicesUseCase serves the student and parent-portal fee
// views: every invoice of one student, payments included.
type ListStudentInvoicesUseCase struct {
	feeRepo fees.Repository
}

func NewListStudentInvoicesUseCase(feeRepo fees.Repository) *ListStudentInvoicesUseCase {
	return &ListStudentInvoicesUseCase{feeRepo: feeRepo}
}

func (uc *ListStudentInvoicesUseCase) Execute(ctx context.Context, studentID uint) ([]*fees.Invoice, error) {
	return uc.feeRepo.ListByStudent(ctx, studentID)
}
