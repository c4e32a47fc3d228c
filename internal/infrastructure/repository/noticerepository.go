package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"scholaris/internal/domain/notice"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/db"
	"scholaris/internal/shared/errors"
)

type NoticeRepository struct {
	db     *gorm.DB
	mapper *mappers.NoticeMapper
}

func NewNoticeRepository(database *gorm.DB) notice.Repository {
	return &NoticeRepository{
		db:     database,
		mapper: mappers.NewNoticeMapper(),
	}
}

func (r *NoticeRepository) Create(ctx context.Context, a *notice.Announcement) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	a.ID = model.ID
	return nil
}

func (r *NoticeRepository) GetByID(ctx context.Context, id uint) (*notice.Announcement, error) {
	var model models.AnnouncementModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("announcement not found")
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *NoticeRepository) Update(ctx context.Context, a *notice.Announcement) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.AnnouncementModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete announcement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("announcement not found")
	}
	return nil
}

func (r *NoticeRepository) List(ctx context.Context, offset, limit int) ([]*notice.Announcement, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.AnnouncementModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	var announcementModels []*models.AnnouncementModel
	if err := tx.
		Order("published_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&announcementModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}

	entities, err := r.mapper.ToEntities(announcementModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *NoticeRepository) ListActiveFor(ctx context.Context, role authorization.UserRole, at time.Time) ([]*notice.Announcement, error) {
	var announcementModels []*models.AnnouncementModel
	tx := db.GetTxFromContext(ctx, r.db)

	// Audience is a JSON column; role filtering happens in memory after
	// the time-window filter narrows the set.
	err := tx.Where("published_at <= ? AND (expires_at IS NULL OR expires_at > ?)", at, at).
		Order("published_at DESC").
		Find(&announcementModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active announcements: %w", err)
	}

	entities, err := r.mapper.ToEntities(announcementModels)
	if err != nil {
		return nil, err
	}

	visible := make([]*notice.Announcement, 0, len(entities))
	for _, a := range entities {
		if a.VisibleTo(role) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}
