package mappers

import (
	"encoding/json"
	"fmt"

	"scholaris/internal/domain/exam"
	"scholaris/internal/infrastructure/persistence/models"
)

type ExamMapper struct{}

func NewExamMapper() *ExamMapper {
	return &ExamMapper{}
}

func (m *ExamMapper) ToEntity(model *models.ExamModel) (*exam.Exam, error) {
	if model == nil {
		return nil, nil
	}

	var subjects []exam.Subject
	if len(model.Subjects) > 0 {
		if err := json.Unmarshal(model.Subjects, &subjects); err != nil {
			return nil, fmt.Errorf("failed to unmarshal exam subjects: %w", err)
		}
	}

	entity, err := exam.Reconstruct(exam.ExamData{
		ID:        model.ID,
		Name:      model.Name,
		Term:      model.Term,
		Class:     model.Class,
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		Subjects:  subjects,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct exam: %w", err)
	}
	return entity, nil
}

func (m *ExamMapper) ToModel(entity *exam.Exam) (*models.ExamModel, error) {
	if entity == nil {
		return nil, nil
	}

	subjects, err := json.Marshal(entity.Subjects())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal exam subjects: %w", err)
	}

	return &models.ExamModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Term:      entity.Term(),
		Class:     entity.Class(),
		StartDate: entity.StartDate(),
		EndDate:   entity.EndDate(),
		Subjects:  subjects,
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *ExamMapper) AdmitCardToEntity(model *models.AdmitCardModel) *exam.AdmitCard {
	if model == nil {
		return nil
	}
	return &exam.AdmitCard{
		ID:          model.ID,
		ExamID:      model.ExamID,
		StudentID:   model.StudentID,
		Serial:      model.Serial,
		FeeOverride: model.FeeOverride,
		IssuedAt:    model.IssuedAt,
		CreatedAt:   model.CreatedAt,
	}
}

func (m *ExamMapper) AdmitCardToModel(entity *exam.AdmitCard) *models.AdmitCardModel {
	if entity == nil {
		return nil
	}
	return &models.AdmitCardModel{
		ID:          entity.ID,
		ExamID:      entity.ExamID,
		StudentID:   entity.StudentID,
		Serial:      entity.Serial,
		FeeOverride: entity.FeeOverride,
		IssuedAt:    entity.IssuedAt,
	}
}

func (m *ExamMapper) ToEntities(examModels []*models.ExamModel) ([]*exam.Exam, error) {
	entities := make([]*exam.Exam, 0, len(examModels))
	for _, model := range examModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *ExamMapper) AdmitCardsToEntities(cardModels []*models.AdmitCardModel) []*exam.AdmitCard {
	entities := make([]*exam.AdmitCard, 0, len(cardModels))
	for _, model := range cardModels {
		entities = append(entities, m.AdmitCardToEntity(model))
	}
	return entities
}
