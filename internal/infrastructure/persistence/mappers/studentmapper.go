package mappers

import (
	"fmt"

	"scholaris/internal/domain/student"
	"scholaris/internal/infrastructure/persistence/models"
)

type StudentMapper struct{}

func NewStudentMapper() *StudentMapper {
	return &StudentMapper{}
}

func (m *StudentMapper) ToEntity(model *models.StudentModel) (*student.Student, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := student.Reconstruct(student.StudentData{
		ID:              model.ID,
		AdmissionNumber: model.AdmissionNumber,
		FirstName:       model.FirstName,
		LastName:        model.LastName,
		Class:           model.Class,
		Section:         model.Section,
		RollNumber:      model.RollNumber,
		DateOfBirth:     model.DateOfBirth,
		GuardianName:    model.GuardianName,
		GuardianPhone:   model.GuardianPhone,
		GuardianEmail:   model.GuardianEmail,
		Address:         model.Address,
		AccountID:       model.AccountID,
		ParentAccountID: model.ParentAccountID,
		Status:          student.EnrollmentStatus(model.Status),
		AdmittedAt:      model.AdmittedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct student: %w", err)
	}
	return entity, nil
}

func (m *StudentMapper) ToModel(entity *student.Student) *models.StudentModel {
	if entity == nil {
		return nil
	}

	return &models.StudentModel{
		ID:              entity.ID(),
		AdmissionNumber: entity.AdmissionNumber(),
		FirstName:       entity.FirstName(),
		LastName:        entity.LastName(),
		Class:           entity.Class(),
		Section:         entity.Section(),
		RollNumber:      entity.RollNumber(),
		DateOfBirth:     entity.DateOfBirth(),
		GuardianName:    entity.GuardianName(),
		GuardianPhone:   entity.GuardianPhone(),
		GuardianEmail:   entity.GuardianEmail(),
		Address:         entity.Address(),
		AccountID:       entity.AccountID(),
		ParentAccountID: entity.ParentAccountID(),
		Status:          entity.Status().String(),
		AdmittedAt:      entity.AdmittedAt(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *StudentMapper) ToEntities(studentModels []*models.StudentModel) ([]*student.Student, error) {
	entities := make([]*student.Student, 0, len(studentModels))
	for _, model := range studentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
