package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"scholaris/internal/domain/staff"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/db"
	"scholaris/internal/shared/errors"
)

type StaffRepository struct {
	db     *gorm.DB
	mapper *mappers.StaffMapper
}

func NewStaffRepository(database *gorm.DB) staff.Repository {
	return &StaffRepository{
		db:     database,
		mapper: mappers.NewStaffMapper(),
	}
}

func (r *StaffRepository) Create(ctx context.Context, entity *staff.Staff) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return entity.SetID(model.ID)
}

func (r *StaffRepository) GetByID(ctx context.Context, id uint) (*staff.Staff, error) {
	var model models.StaffModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("staff member not found")
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *StaffRepository) GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*staff.Staff, error) {
	var model models.StaffModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("employee_number = ?", employeeNumber).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff member by employee number: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *StaffRepository) Update(ctx context.Context, entity *staff.Staff) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}
	return nil
}

func (r *StaffRepository) List(ctx context.Context, filter staff.ListFilter) ([]*staff.Staff, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.StaffModel{})

	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("employee_number LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	var staffModels []*models.StaffModel
	if err := query.
		Order("employee_number").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&staffModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}

	entities, err := r.mapper.ToEntities(staffModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
