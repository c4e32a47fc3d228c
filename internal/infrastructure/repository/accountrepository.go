package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"scholaris/internal/domain/account"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/db"
	"scholaris/internal/shared/errors"
)

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

func NewAccountRepository(database *gorm.DB) account.Repository {
	return &AccountRepository{
		db:     database,
		mapper: mappers.NewAccountMapper(),
	}
}

func (r *AccountRepository) Create(ctx context.Context, entity *account.Account) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return entity.SetID(model.ID)
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	return r.getOne(ctx, "username = ?", username)
}

func (r *AccountRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*account.Account, error) {
	return r.getOne(ctx, "password_reset_token_hash = ?", tokenHash)
}

func (r *AccountRepository) GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*account.Account, error) {
	return r.getOne(ctx, "email_verification_token_hash = ?", tokenHash)
}

// getOne returns (nil, nil) on a miss so callers can keep credential
// failures indistinguishable from unknown identifiers.
func (r *AccountRepository) getOne(ctx context.Context, query string, arg any) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, arg).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *AccountRepository) Update(ctx context.Context, entity *account.Account) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes all columns; nullable token and lock fields must be
	// clearable back to NULL.
	result := tx.Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	return nil
}

func (r *AccountRepository) List(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AccountModel{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("email LIKE ? OR username LIKE ? OR full_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	var accountModels []*models.AccountModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&accountModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	entities, err := r.mapper.ToEntities(accountModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
