package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/staff"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type HireStaffCommand struct {
	EmployeeNumber string
	Name           string
	Designation    string
	Department     string
	Phone          string
	Email          string
	JoinedAt       time.Time
	AccountID      *uint
}

type HireStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewHireStaffUseCase(staffRepo staff.Repository, log logger.Interface) *HireStaffUseCase {
	return &HireStaffUseCase{
		staffRepo: staffRepo,
		logger:    log,
	}
}

func (uc *HireStaffUseCase) Execute(ctx context.Context, cmd HireStaffCommand) (*staff.Staff, error) {
	existing, err := uc.staffRepo.GetByEmployeeNumber(ctx, cmd.EmployeeNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("employee number is already in use")
	}

	s, err := staff.NewStaff(cmd.EmployeeNumber, cmd.Name, cmd.Designation, cmd.Department, cmd.JoinedAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Phone != "" || cmd.Email != "" {
		if err := s.UpdateProfile(cmd.Name, cmd.Designation, cmd.Department, cmd.Phone, cmd.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.AccountID != nil {
		if err := s.LinkAccount(*cmd.AccountID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.staffRepo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Infow("staff hired",
		"staff_id", s.ID(),
		"employee_number", s.EmployeeNumber(),
		"designation", s.Designation())
	return s, nil
}

type UpdateStaffCommand struct {
	StaffID     uint
	Name        string
	Designation string
	Department  string
	Phone       string
	Email       string
	Status      string
}

type UpdateStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewUpdateStaffUseCase(staffRepo staff.Repository, log logger.Interface) *UpdateStaffUseCase {
	return &UpdateStaffUseCase{
		staffRepo: staffRepo,
		logger:    log,
	}
}

func (uc *UpdateStaffUseCase) Execute(ctx context.Context, cmd UpdateStaffCommand) (*staff.Staff, error) {
	s, err := uc.staffRepo.GetByID(ctx, cmd.StaffID)
	if err != nil {
		return nil, err
	}

	if err := s.UpdateProfile(cmd.Name, cmd.Designation, cmd.Department, cmd.Phone, cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Status != "" {
		if err := s.ChangeStatus(staff.EmploymentStatus(cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.staffRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Infow("staff updated", "staff_id", s.ID())
	return s, nil
}

type GetStaffUseCase struct {
	staffRepo staff.Repository
}

func NewGetStaffUseCase(staffRepo staff.Repository) *GetStaffUseCase {
	return &GetStaffUseCase{staffRepo: staffRepo}
}

func (uc *GetStaffUseCase) Execute(ctx context.Context, staffID uint) (*staff.Staff, error) {
	return uc.staffRepo.GetByID(ctx, staffID)
}

type ListStaffQuery struct {
	Department string
	Status     string
	Search     string
	Offset     int
	Limit      int
}

type ListStaffResult struct {
	Staff []*staff.Staff
	Total int64
}

type ListStaffUseCase struct {
	staffRepo staff.Repository
}

func NewListStaffUseCase(staffRepo staff.Repository) *ListStaffUseCase {
	return &ListStaffUseCase{staffRepo: staffRepo}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, query ListStaffQuery) (*ListStaffResult, error) {
	if query.Limit <= 0 {
		query.Limit = defaultListLimit
	}
	if query.Limit > maxListLimit {
		query.Limit = maxListLimit
	}

	records, total, err := uc.staffRepo.List(ctx, staff.ListFilter{
		Department: query.Department,
		Status:     query.Status,
		Search:     query.Search,
		Offset:     query.Offset,
		Limit:      query.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &ListStaffResult{Staff: records, Total: total}, nil
}
