package repository

import (
	"fmt"

	"gorm.io/gorm"

	"scholaris/internal/domain/account"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
)

// ActivityRepository only ever inserts and reads; the log is append-only.
type ActivityRepository struct {
	db     *gorm.DB
	mapper *mappers.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) account.ActivityRepository {
	return &ActivityRepository{
		db:     db,
		mapper: mappers.NewActivityMapper(),
	}
}

func (r *ActivityRepository) Append(entry *account.ActivityEntry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return err
	}
	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByAccountID(accountID uint, limit int) ([]*account.ActivityEntry, error) {
	var activityModels []*models.ActivityLogModel
	err := r.db.Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activityModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activity by account: %w", err)
	}
	return r.mapper.ToEntities(activityModels)
}

func (r *ActivityRepository) ListRecent(limit int) ([]*account.ActivityEntry, error) {
	var activityModels []*models.ActivityLogModel
	err := r.db.Order("created_at DESC").
		Limit(limit).
		Find(&activityModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}
	return r.mapper.ToEntities(activityModels)
}
