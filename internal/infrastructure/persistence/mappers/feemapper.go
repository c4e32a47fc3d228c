package mappers

import (
	"fmt"

	"scholaris/internal/domain/fees"
	"scholaris/internal/infrastructure/persistence/models"
)

type FeeMapper struct{}

func NewFeeMapper() *FeeMapper {
	return &FeeMapper{}
}

func (m *FeeMapper) ToEntity(model *models.FeeInvoiceModel) (*fees.Invoice, error) {
	if model == nil {
		return nil, nil
	}

	payments := make([]*fees.Payment, 0, len(model.Payments))
	for i := range model.Payments {
		payments = append(payments, m.PaymentToEntity(&model.Payments[i]))
	}

	entity, err := fees.Reconstruct(fees.InvoiceData{
		ID:         model.ID,
		StudentID:  model.StudentID,
		Title:      model.Title,
		AmountDue:  model.AmountDue,
		AmountPaid: model.AmountPaid,
		DueDate:    model.DueDate,
		Status:     fees.InvoiceStatus(model.Status),
		Payments:   payments,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct invoice: %w", err)
	}
	return entity, nil
}

func (m *FeeMapper) ToModel(entity *fees.Invoice) *models.FeeInvoiceModel {
	if entity == nil {
		return nil
	}

	payments := entity.Payments()
	paymentModels := make([]models.FeePaymentModel, 0, len(payments))
	for _, p := range payments {
		paymentModels = append(paymentModels, *m.PaymentToModel(p))
	}

	return &models.FeeInvoiceModel{
		ID:         entity.ID(),
		StudentID:  entity.StudentID(),
		Title:      entity.Title(),
		AmountDue:  entity.AmountDue(),
		AmountPaid: entity.AmountPaid(),
		DueDate:    entity.DueDate(),
		Status:     string(entity.Status()),
		Payments:   paymentModels,
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *FeeMapper) PaymentToEntity(model *models.FeePaymentModel) *fees.Payment {
	if model == nil {
		return nil
	}
	return &fees.Payment{
		ID:            model.ID,
		InvoiceID:     model.InvoiceID,
		Amount:        model.Amount,
		Method:        fees.PaymentMethod(model.Method),
		Reference:     model.Reference,
		ReceiptNumber: model.ReceiptNumber,
		PaidAt:        model.PaidAt,
		CreatedAt:     model.CreatedAt,
	}
}

func (m *FeeMapper) PaymentToModel(entity *fees.Payment) *models.FeePaymentModel {
	if entity == nil {
		return nil
	}
	return &models.FeePaymentModel{
		ID:            entity.ID,
		InvoiceID:     entity.InvoiceID,
		Amount:        entity.Amount,
		Method:        string(entity.Method),
		Reference:     entity.Reference,
		ReceiptNumber: entity.ReceiptNumber,
		PaidAt:        entity.PaidAt,
	}
}

func (m *FeeMapper) ToEntities(invoiceModels []*models.FeeInvoiceModel) ([]*fees.Invoice, error) {
	entities := make([]*fees.Invoice, 0, len(invoiceModels))
	for _, model := range invoiceModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
