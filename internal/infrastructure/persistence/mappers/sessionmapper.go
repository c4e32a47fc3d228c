package mappers

import (
	"scholaris/internal/domain/account"
	"scholaris/internal/infrastructure/persistence/models"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(model *models.SessionModel) *account.Session {
	if model == nil {
		return nil
	}

	var endReason *account.EndReason
	if model.EndReason != nil {
		r := account.EndReason(*model.EndReason)
		endReason = &r
	}

	return &account.Session{
		ID:               model.ID,
		AccountID:        model.AccountID,
		IPAddress:        model.IPAddress,
		UserAgent:        model.UserAgent,
		LoginMethod:      account.LoginMethod(model.LoginMethod),
		TokenHash:        model.TokenHash,
		RefreshTokenHash: model.RefreshTokenHash,
		Active:           model.Active,
		ExpiresAt:        model.ExpiresAt,
		LastActivityAt:   model.LastActivityAt,
		StartedAt:        model.StartedAt,
		EndedAt:          model.EndedAt,
		EndReason:        endReason,
	}
}

func (m *SessionMapper) ToModel(entity *account.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}

	var endReason *string
	if entity.EndReason != nil {
		r := string(*entity.EndReason)
		endReason = &r
	}

	return &models.SessionModel{
		ID:               entity.ID,
		AccountID:        entity.AccountID,
		IPAddress:        entity.IPAddress,
		UserAgent:        entity.UserAgent,
		LoginMethod:      string(entity.LoginMethod),
		TokenHash:        entity.TokenHash,
		RefreshTokenHash: entity.RefreshTokenHash,
		Active:           entity.Active,
		ExpiresAt:        entity.ExpiresAt,
		LastActivityAt:   entity.LastActivityAt,
		StartedAt:        entity.StartedAt,
		EndedAt:          entity.EndedAt,
		EndReason:        endReason,
	}
}

func (m *SessionMapper) ToEntities(sessionModels []*models.SessionModel) []*account.Session {
	entities := make([]*account.Session, 0, len(sessionModels))
	for _, model := range sessionModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
