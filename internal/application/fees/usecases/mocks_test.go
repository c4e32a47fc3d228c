package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/fees"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/errors"
)

type mockFeeRepository struct {
	CreateFunc                    func(ctx context.Context, inv *fees.Invoice) error
	GetByIDFunc                   func(ctx context.Context, id uint) (*fees.Invoice, error)
	UpdateFunc                    func(ctx context.Context, inv *fees.Invoice) error
	ListFunc                      func(ctx context.Context, filter fees.ListFilter) ([]*fees.Invoice, int64, error)
	ListByStudentFunc             func(ctx context.Context, studentID uint) ([]*fees.Invoice, error)
	ListOverdueCandidatesFunc     func(ctx context.Context, asOf time.Time) ([]*fees.Invoice, error)
	HasUnsettledOverdueFunc       func(ctx context.Context, studentID uint) (bool, error)
	GetPaymentByReceiptNumberFunc func(ctx context.Context, receiptNumber string) (*fees.Payment, *fees.Invoice, error)
}

func (m *mockFeeRepository) Create(ctx context.Context, inv *fees.Invoice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, inv)
	}
	return nil
}

func (m *mockFeeRepository) GetByID(ctx context.Context, id uint) (*fees.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("invoice not found")
}

func (m *mockFeeRepository) Update(ctx context.Context, inv *fees.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inv)
	}
	return nil
}

func (m *mockFeeRepository) List(ctx context.Context, filter fees.ListFilter) ([]*fees.Invoice, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockFeeRepository) ListByStudent(ctx context.Context, studentID uint) ([]*fees.Invoice, error) {
	if m.ListByStudentFunc != nil {
		return m.ListByStudentFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *mockFeeRepository) ListOverdueCandidates(ctx context.Context, asOf time.Time) ([]*fees.Invoice, error) {
	if m.ListOverdueCandidatesFunc != nil {
		return m.ListOverdueCandidatesFunc(ctx, asOf)
	}
	return nil, nil
}

func (m *mockFeeRepository) HasUnsettledOverdue(ctx context.Context, studentID uint) (bool, error) {
	if m.HasUnsettledOverdueFunc != nil {
		return m.HasUnsettledOverdueFunc(ctx, studentID)
	}
	return false, nil
}

func (m *mockFeeRepository) GetPaymentByReceiptNumber(ctx context.Context, receiptNumber string) (*fees.Payment, *fees.Invoice, error) {
	if m.GetPaymentByReceiptNumberFunc != nil {
		return m.GetPaymentByReceiptNumberFunc(ctx, receiptNumber)
	}
	return nil, nil, errors.NewNotFoundError("receipt not found")
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

type mockReminderMailer struct {
	sent []string
	err  error
}

func (m *mockReminderMailer) SendFeeReminder(to, studentName, invoiceTitle, amount, dueDate string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}
