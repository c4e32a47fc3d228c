package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"scholaris/internal/domain/fees"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/db"
	"scholaris/internal/shared/errors"
)

type FeeRepository struct {
	db     *gorm.DB
	mapper *mappers.FeeMapper
}

func NewFeeRepository(database *gorm.DB) fees.Repository {
	return &FeeRepository{
		db:     database,
		mapper: mappers.NewFeeMapper(),
	}
}

func (r *FeeRepository) Create(ctx context.Context, inv *fees.Invoice) error {
	model := r.mapper.ToModel(inv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return inv.SetID(model.ID)
}

func (r *FeeRepository) GetByID(ctx context.Context, id uint) (*fees.Invoice, error) {
	var model models.FeeInvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Preload("Payments").First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *FeeRepository) Update(ctx context.Context, inv *fees.Invoice) error {
	model := r.mapper.ToModel(inv)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save persists the invoice row and inserts payments that have no ID
	// yet, so a freshly recorded payment lands with its invoice.
	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return nil
}

func (r *FeeRepository) List(ctx context.Context, filter fees.ListFilter) ([]*fees.Invoice, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.FeeInvoiceModel{})

	if filter.StudentID != 0 {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var invoiceModels []*models.FeeInvoiceModel
	if err := query.
		Preload("Payments").
		Order("due_date DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&invoiceModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	entities, err := r.mapper.ToEntities(invoiceModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *FeeRepository) ListByStudent(ctx context.Context, studentID uint) ([]*fees.Invoice, error) {
	var invoiceModels []*models.FeeInvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Preload("Payments").
		Where("student_id = ?", studentID).
		Order("due_date DESC").
		Find(&invoiceModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices by student: %w", err)
	}
	return r.mapper.ToEntities(invoiceModels)
}

func (r *FeeRepository) ListOverdueCandidates(ctx context.Context, asOf time.Time) ([]*fees.Invoice, error) {
	var invoiceModels []*models.FeeInvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Preload("Payments").
		Where("status IN ? AND due_date < ?",
			[]string{string(fees.StatusPending), string(fees.StatusPartial)}, asOf).
		Find(&invoiceModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue candidates: %w", err)
	}
	return r.mapper.ToEntities(invoiceModels)
}

func (r *FeeRepository) HasUnsettledOverdue(ctx context.Context, studentID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.FeeInvoiceModel{}).
		Where("student_id = ? AND status = ?", studentID, string(fees.StatusOverdue)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check overdue invoices: %w", err)
	}
	return count > 0, nil
}

func (r *FeeRepository) GetPaymentByReceiptNumber(ctx context.Context, receiptNumber string) (*fees.Payment, *fees.Invoice, error) {
	var paymentModel models.FeePaymentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("receipt_number = ?", receiptNumber).First(&paymentModel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, errors.NewNotFoundError("receipt not found")
		}
		return nil, nil, fmt.Errorf("failed to get payment by receipt number: %w", err)
	}

	invoice, err := r.GetByID(ctx, paymentModel.InvoiceID)
	if err != nil {
		return nil, nil, err
	}
	return r.mapper.PaymentToEntity(&paymentModel), invoice, nil
}
