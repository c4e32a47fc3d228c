package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"scholaris/internal/domain/student"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/db"
	"scholaris/internal/shared/errors"
)

type StudentRepository struct {
	db     *gorm.DB
	mapper *mappers.StudentMapper
}

func NewStudentRepository(database *gorm.DB) student.Repository {
	return &StudentRepository{
		db:     database,
		mapper: mappers.NewStudentMapper(),
	}
}

func (r *StudentRepository) Create(ctx context.Context, entity *student.Student) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return entity.SetID(model.ID)
}

func (r *StudentRepository) GetByID(ctx context.Context, id uint) (*student.Student, error) {
	var model models.StudentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("student not found")
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *StudentRepository) GetByAdmissionNumber(ctx context.Context, admissionNumber string) (*student.Student, error) {
	var model models.StudentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("admission_number = ?", admissionNumber).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student by admission number: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *StudentRepository) Update(ctx context.Context, entity *student.Student) error {
	model := r.mapper.ToModel(entity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

func (r *StudentRepository) List(ctx context.Context, filter student.ListFilter) ([]*student.Student, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.StudentModel{})

	if filter.Class != "" {
		query = query.Where("class = ?", filter.Class)
	}
	if filter.Section != "" {
		query = query.Where("section = ?", filter.Section)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("admission_number LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	var studentModels []*models.StudentModel
	if err := query.
		Order("class, section, roll_number").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&studentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}

	entities, err := r.mapper.ToEntities(studentModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *StudentRepository) ListByClass(ctx context.Context, class, section string) ([]*student.Student, error) {
	var studentModels []*models.StudentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("class = ? AND section = ? AND status = ?", class, section, student.StatusEnrolled.String()).
		Order("roll_number").
		Find(&studentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list students by class: %w", err)
	}
	return r.mapper.ToEntities(studentModels)
}

func (r *StudentRepository) ListByParentAccountID(ctx context.Context, accountID uint) ([]*student.Student, error) {
	var studentModels []*models.StudentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("parent_account_id = ?", accountID).
		Order("first_name").
		Find(&studentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list students by parent account: %w", err)
	}
	return r.mapper.ToEntities(studentModels)
}
