package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/exam"
	"scholaris/internal/domain/fees"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/errors"
)

type mockExamRepository struct {
	CreateFunc  func(ctx context.Context, e *exam.Exam) error
	GetByIDFunc func(ctx context.Context, id uint) (*exam.Exam, error)
	UpdateFunc  func(ctx context.Context, e *exam.Exam) error
	ListFunc    func(ctx context.Context, offset, limit int) ([]*exam.Exam, int64, error)
}

func (m *mockExamRepository) Create(ctx context.Context, e *exam.Exam) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockExamRepository) GetByID(ctx context.Context, id uint) (*exam.Exam, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("exam not found")
}

func (m *mockExamRepository) Update(ctx context.Context, e *exam.Exam) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockExamRepository) List(ctx context.Context, offset, limit int) ([]*exam.Exam, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

type mockAdmitCardRepository struct {
	CreateFunc              func(ctx context.Context, card *exam.AdmitCard) error
	GetByExamAndStudentFunc func(ctx context.Context, examID, studentID uint) (*exam.AdmitCard, error)
	GetBySerialFunc         func(ctx context.Context, serial string) (*exam.AdmitCard, error)
	ListByExamFunc          func(ctx context.Context, examID uint) ([]*exam.AdmitCard, error)
}

func (m *mockAdmitCardRepository) Create(ctx context.Context, card *exam.AdmitCard) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	return nil
}

func (m *mockAdmitCardRepository) GetByExamAndStudent(ctx context.Context, examID, studentID uint) (*exam.AdmitCard, error) {
	if m.GetByExamAndStudentFunc != nil {
		return m.GetByExamAndStudentFunc(ctx, examID, studentID)
	}
	return nil, nil
}

func (m *mockAdmitCardRepository) GetBySerial(ctx context.Context, serial string) (*exam.AdmitCard, error) {
	if m.GetBySerialFunc != nil {
		return m.GetBySerialFunc(ctx, serial)
	}
	return nil, errors.NewNotFoundError("admit card not found")
}

func (m *mockAdmitCardRepository) ListByExam(ctx context.Context, examID uint) ([]*exam.AdmitCard, error) {
	if m.ListByExamFunc != nil {
		return m.ListByExamFunc(ctx, examID)
	}
	return nil, nil
}

type mockStudentRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*student.Student, error)
	ListFunc    func(ctx context.Context, filter student.ListFilter) ([]*student.Student, int64, error)
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
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockStudentRepository) ListByClass(ctx context.Context, class, section string) ([]*student.Student, error) {
	return nil, nil
}

func (m *mockStudentRepository) ListByParentAccountID(ctx context.Context, accountID uint) ([]*student.Student, error) {
	return nil, nil
}

type mockFeeRepository struct {
	HasUnsettledOverdueFunc func(ctx context.Context, studentID uint) (bool, error)
}

func (m *mockFeeRepository) Create(ctx context.Context, inv *fees.Invoice) error { return nil }

func (m *mockFeeRepository) GetByID(ctx context.Context, id uint) (*fees.Invoice, error) {
	return nil, errors.NewNotFoundError("invoice not found")
}

func (m *mockFeeRepository) Update(ctx context.Context, inv *fees.Invoice) error { return nil }

func (m *mockFeeRepository) List(ctx context.Context, filter fees.ListFilter) ([]*fees.Invoice, int64, error) {
	return nil, 0, nil
}

func (m *mockFeeRepository) ListByStudent(ctx context.Context, studentID uint) ([]*fees.Invoice, error) {
	return nil, nil
}

func (m *mockFeeRepository) ListOverdueCandidates(ctx context.Context, asOf time.Time) ([]*fees.Invoice, error) {
	return nil, nil
}

func (m *mockFeeRepository) HasUnsettledOverdue(ctx context.Context, studentID uint) (bool, error) {
	if m.HasUnsettledOverdueFunc != nil {
		return m.HasUnsettledOverdueFunc(ctx, studentID)
	}
	return false, nil
}

func (m *mockFeeRepository) GetPaymentByReceiptNumber(ctx context.Context, receiptNumber string) (*fees.Payment, *fees.Invoice, error) {
	return nil, nil, errors.NewNotFoundError("receipt not found")
}
