package mappers

import (
	"encoding/json"
	"fmt"

	"scholaris/internal/domain/transport"
	"scholaris/internal/infrastructure/persistence/models"
)

type TransportMapper struct{}

func NewTransportMapper() *TransportMapper {
	return &TransportMapper{}
}

func (m *TransportMapper) RouteToEntity(model *models.RouteModel) (*transport.Route, error) {
	if model == nil {
		return nil, nil
	}

	var stops []string
	if len(model.Stops) > 0 {
		if err := json.Unmarshal(model.Stops, &stops); err != nil {
			return nil, fmt.Errorf("failed to unmarshal route stops: %w", err)
		}
	}

	entity, err := transport.ReconstructRoute(transport.RouteData{
		ID:            model.ID,
		Name:          model.Name,
		VehicleNumber: model.VehicleNumber,
		DriverName:    model.DriverName,
		DriverPhone:   model.DriverPhone,
		Capacity:      model.Capacity,
		MonthlyFee:    model.MonthlyFee,
		Stops:         stops,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct route: %w", err)
	}
	return entity, nil
}

func (m *TransportMapper) RouteToModel(entity *transport.Route) (*models.RouteModel, error) {
	if entity == nil {
		return nil, nil
	}

	stops, err := json.Marshal(entity.Stops())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal route stops: %w", err)
	}

	return &models.RouteModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		VehicleNumber: entity.VehicleNumber(),
		DriverName:    entity.DriverName(),
		DriverPhone:   entity.DriverPhone(),
		Capacity:      entity.Capacity(),
		MonthlyFee:    entity.MonthlyFee(),
		Stops:         stops,
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *TransportMapper) AssignmentToEntity(model *models.TransportAssignmentModel) *transport.Assignment {
	if model == nil {
		return nil
	}
	return &transport.Assignment{
		ID:         model.ID,
		RouteID:    model.RouteID,
		StudentID:  model.StudentID,
		PickupStop: model.PickupStop,
		StartedAt:  model.StartedAt,
		EndedAt:    model.EndedAt,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func (m *TransportMapper) AssignmentToModel(entity *transport.Assignment) *models.TransportAssignmentModel {
	if entity == nil {
		return nil
	}
	return &models.TransportAssignmentModel{
		ID:         entity.ID,
		RouteID:    entity.RouteID,
		StudentID:  entity.StudentID,
		PickupStop: entity.PickupStop,
		StartedAt:  entity.StartedAt,
		EndedAt:    entity.EndedAt,
	}
}

func (m *TransportMapper) RoutesToEntities(routeModels []*models.RouteModel) ([]*transport.Route, error) {
	entities := make([]*transport.Route, 0, len(routeModels))
	for _, model := range routeModels {
		entity, err := m.RouteToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *TransportMapper) AssignmentsToEntities(assignmentModels []*models.TransportAssignmentModel) []*transport.Assignment {
	entities := make([]*transport.Assignment, 0, len(assignmentModels))
	for _, model := range assignmentModels {
		entities = append(entities, m.AssignmentToEntity(model))
	}
	return entities
}
