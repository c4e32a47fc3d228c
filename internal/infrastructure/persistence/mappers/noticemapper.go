package mappers

import (
	"encoding/json"
	"fmt"

	"scholaris/internal/domain/notice"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/authorization"
)

type NoticeMapper struct{}

func NewNoticeMapper() *NoticeMapper {
	return &NoticeMapper{}
}

func (m *NoticeMapper) ToEntity(model *models.AnnouncementModel) (*notice.Announcement, error) {
	if model == nil {
		return nil, nil
	}

	var audience []authorization.UserRole
	if len(model.Audience) > 0 {
		if err := json.Unmarshal(model.Audience, &audience); err != nil {
			return nil, fmt.Errorf("failed to unmarshal announcement audience: %w", err)
		}
	}

	return &notice.Announcement{
		ID:           model.ID,
		Title:        model.Title,
		BodyMarkdown: model.BodyMarkdown,
		BodyHTML:     model.BodyHTML,
		Audience:     audience,
		AuthorID:     model.AuthorID,
		PublishedAt:  model.PublishedAt,
		ExpiresAt:    model.ExpiresAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

func (m *NoticeMapper) ToModel(entity *notice.Announcement) (*models.AnnouncementModel, error) {
	if entity == nil {
		return nil, nil
	}

	audience, err := json.Marshal(entity.Audience)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal announcement audience: %w", err)
	}

	return &models.AnnouncementModel{
		ID:           entity.ID,
		Title:        entity.Title,
		BodyMarkdown: entity.BodyMarkdown,
		BodyHTML:     entity.BodyHTML,
		Audience:     audience,
		AuthorID:     entity.AuthorID,
		PublishedAt:  entity.PublishedAt,
		ExpiresAt:    entity.ExpiresAt,
	}, nil
}

func (m *NoticeMapper) ToEntities(announcementModels []*models.AnnouncementModel) ([]*notice.Announcement, error) {
	entities := make([]*notice.Announcement, 0, len(announcementModels))
	for _, model := range announcementModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
