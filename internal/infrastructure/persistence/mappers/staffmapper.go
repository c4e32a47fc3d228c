package mappers

import (
	"fmt"

	"scholaris/internal/domain/staff"
	"scholaris/internal/infrastructure/persistence/models"
)

type StaffMapper struct{}

func NewStaffMapper() *StaffMapper {
	return &StaffMapper{}
}

func (m *StaffMapper) ToEntity(model *models.StaffModel) (*staff.Staff, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := staff.Reconstruct(staff.StaffData{
		ID:             model.ID,
		EmployeeNumber: model.EmployeeNumber,
		Name:           model.Name,
		Designation:    model.Designation,
		Department:     model.Department,
		Phone:          model.Phone,
		Email:          model.Email,
		AccountID:      model.AccountID,
		Status:         staff.EmploymentStatus(model.Status),
		JoinedAt:       model.JoinedAt,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct staff: %w", err)
	}
	return entity, nil
}

func (m *StaffMapper) ToModel(entity *staff.Staff) *models.StaffModel {
	if entity == nil {
		return nil
	}

	return &models.StaffModel{
		ID:             entity.ID(),
		EmployeeNumber: entity.EmployeeNumber(),
		Name:           entity.Name(),
		Designation:    entity.Designation(),
		Department:     entity.Department(),
		Phone:          entity.Phone(),
		Email:          entity.Email(),
		AccountID:      entity.AccountID(),
		Status:         string(entity.Status()),
		JoinedAt:       entity.JoinedAt(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *StaffMapper) ToEntities(staffModels []*models.StaffModel) ([]*staff.Staff, error) {
	entities := make([]*staff.Staff, 0, len(staffModels))
	for _, model := range staffModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
