package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"scholaris/internal/domain/exam"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/db"
	"scholaris/internal/shared/errors"
)

type ExamRepository struct {
	db     *gorm.DB
	mapper *mappers.ExamMapper
}

func NewExamRepository(database *gorm.DB) exam.ExamRepository {
	return &ExamRepository{
		db:     database,
		mapper: mappers.NewExamMapper(),
	}
}

func (r *ExamRepository) Create(ctx context.Context, e *exam.Exam) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *ExamRepository) GetByID(ctx context.Context, id uint) (*exam.Exam, error) {
	var model models.ExamModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("exam not found")
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ExamRepository) Update(ctx context.Context, e *exam.Exam) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
	}
	return nil
}

func (r *ExamRepository) List(ctx context.Context, offset, limit int) ([]*exam.Exam, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.ExamModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count exams: %w", err)
	}

	var examModels []*models.ExamModel
	if err := tx.
		Order("start_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&examModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list exams: %w", err)
	}

	entities, err := r.mapper.ToEntities(examModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

type AdmitCardRepository struct {
	db     *gorm.DB
	mapper *mappers.ExamMapper
}

func NewAdmitCardRepository(database *gorm.DB) exam.AdmitCardRepository {
	return &AdmitCardRepository{
		db:     database,
		mapper: mappers.NewExamMapper(),
	}
}

func (r *AdmitCardRepository) Create(ctx context.Context, card *exam.AdmitCard) error {
	model := r.mapper.AdmitCardToModel(card)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create admit card: %w", err)
	}
	card.ID = model.ID
	return nil
}

func (r *AdmitCardRepository) GetByExamAndStudent(ctx context.Context, examID, studentID uint) (*exam.AdmitCard, error) {
	var model models.AdmitCardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("exam_id = ? AND student_id = ?", examID, studentID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admit card: %w", err)
	}
	return r.mapper.AdmitCardToEntity(&model), nil
}

func (r *AdmitCardRepository) GetBySerial(ctx context.Context, serial string) (*exam.AdmitCard, error) {
	var model models.AdmitCardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("serial = ?", serial).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("admit card not found")
		}
		return nil, fmt.Errorf("failed to get admit card by serial: %w", err)
	}
	return r.mapper.AdmitCardToEntity(&model), nil
}

func (r *AdmitCardRepository) ListByExam(ctx context.Context, examID uint) ([]*exam.AdmitCard, error) {
	var cardModels []*models.AdmitCardModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("exam_id = ?", examID).
		Order("serial").
		Find(&cardModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list admit cards: %w", err)
	}
	return r.mapper.AdmitCardsToEntities(cardModels), nil
}
