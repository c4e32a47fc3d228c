package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"scholaris/internal/domain/account"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper *mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) account.SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(session *account.Session) error {
	model := r.mapper.ToModel(session)
	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(sessionID string) (*account.Session, error) {
	var model models.SessionModel
	if err := r.db.Where("id = ?", sessionID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SessionRepository) GetActiveByID(sessionID string) (*account.Session, error) {
	var model models.SessionModel
	err := r.db.Where("id = ? AND active = ? AND expires_at > ?", sessionID, true, time.Now().UTC()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SessionRepository) GetByAccountID(accountID uint) ([]*account.Session, error) {
	var sessionModels []*models.SessionModel
	err := r.db.Where("account_id = ? AND active = ?", accountID, true).
		Order("last_activity_at DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions by account: %w", err)
	}
	return r.mapper.ToEntities(sessionModels), nil
}

func (r *SessionRepository) GetByRefreshTokenHash(refreshTokenHash string) (*account.Session, error) {
	var model models.SessionModel
	err := r.db.Where("refresh_token_hash = ? AND active = ? AND expires_at > ?",
		refreshTokenHash, true, time.Now().UTC()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by refresh token: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *SessionRepository) Update(session *account.Session) error {
	model := r.mapper.ToModel(session)
	if err := r.db.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

func (r *SessionRepository) EndByAccountID(accountID uint, reason account.EndReason) error {
	now := time.Now().UTC()
	err := r.db.Model(&models.SessionModel{}).
		Where("account_id = ? AND active = ?", accountID, true).
		Updates(map[string]any{
			"active":     false,
			"ended_at":   now,
			"end_reason": string(reason),
			"updated_at": now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to end sessions by account: %w", err)
	}
	return nil
}

func (r *SessionRepository) EndExpired() (int64, error) {
	now := time.Now().UTC()
	result := r.db.Model(&models.SessionModel{}).
		Where("active = ? AND expires_at <= ?", true, now).
		Updates(map[string]any{
			"active":     false,
			"ended_at":   now,
			"end_reason": string(account.EndReasonExpired),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to end expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
