package usecases

import (
	"context"

	"scholaris/internal/domain/student"
	"scholaris/internal/domain/transport"
	"scholaris/internal/shared/errors"
)

type mockRouteRepository struct {
	CreateFunc  func(ctx context.Context, r *transport.Route) error
	GetByIDFunc func(ctx context.Context, id uint) (*transport.Route, error)
	UpdateFunc  func(ctx context.Context, r *transport.Route) error
	DeleteFunc  func(ctx context.Context, id uint) error
	ListFunc    func(ctx context.Context, offset, limit int) ([]*transport.Route, int64, error)
}

func (m *mockRouteRepository) Create(ctx context.Context, r *transport.Route) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockRouteRepository) GetByID(ctx context.Context, id uint) (*transport.Route, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("route not found")
}

func (m *mockRouteRepository) Update(ctx context.Context, r *transport.Route) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRouteRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRouteRepository) List(ctx context.Context, offset, limit int) ([]*transport.Route, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

type mockAssignmentRepository struct {
	CreateFunc             func(ctx context.Context, a *transport.Assignment) error
	GetByIDFunc            func(ctx context.Context, id uint) (*transport.Assignment, error)
	GetActiveByStudentFunc func(ctx context.Context, studentID uint) (*transport.Assignment, error)
	UpdateFunc             func(ctx context.Context, a *transport.Assignment) error
	ListActiveByRouteFunc  func(ctx context.Context, routeID uint) ([]*transport.Assignment, error)
	CountActiveByRouteFunc func(ctx context.Context, routeID uint) (int64, error)
}

func (m *mockAssignmentRepository) Create(ctx context.Context, a *transport.Assignment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByID(ctx context.Context, id uint) (*transport.Assignment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("assignment not found")
}

func (m *mockAssignmentRepository) GetActiveByStudent(ctx context.Context, studentID uint) (*transport.Assignment, error) {
	if m.GetActiveByStudentFunc != nil {
		return m.GetActiveByStudentFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *transport.Assignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) ListActiveByRoute(ctx context.Context, routeID uint) ([]*transport.Assignment, error) {
	if m.ListActiveByRouteFunc != nil {
		return m.ListActiveByRouteFunc(ctx, routeID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) CountActiveByRoute(ctx context.Context, routeID uint) (int64, error) {
	if m.CountActiveByRouteFunc != nil {
		return m.CountActiveByRouteFunc(ctx, routeID)
	}
	return 0, nil
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
