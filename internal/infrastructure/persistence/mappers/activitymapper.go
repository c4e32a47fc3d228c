package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"scholaris/internal/domain/account"
	"scholaris/internal/infrastructure/persistence/models"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(model *models.ActivityLogModel) (*account.ActivityEntry, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal activity metadata: %w", err)
		}
	}

	return &account.ActivityEntry{
		ID:          model.ID,
		AccountID:   model.AccountID,
		Type:        account.ActivityType(model.Type),
		Description: model.Description,
		IPAddress:   model.IPAddress,
		UserAgent:   model.UserAgent,
		Metadata:    metadata,
		CreatedAt:   model.CreatedAt,
	}, nil
}

func (m *ActivityMapper) ToModel(entity *account.ActivityEntry) (*models.ActivityLogModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if entity.Metadata != nil {
		raw, err := json.Marshal(entity.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal activity metadata: %w", err)
		}
		metadata = raw
	}

	return &models.ActivityLogModel{
		ID:          entity.ID,
		AccountID:   entity.AccountID,
		Type:        string(entity.Type),
		Description: entity.Description,
		IPAddress:   entity.IPAddress,
		UserAgent:   entity.UserAgent,
		Metadata:    metadata,
	}, nil
}

func (m *ActivityMapper) ToEntities(activityModels []*models.ActivityLogModel) ([]*account.ActivityEntry, error) {
	entities := make([]*account.ActivityEntry, 0, len(activityModels))
	for _, model := range activityModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
