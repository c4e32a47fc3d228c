package mappers

import (
	"fmt"

	"scholaris/internal/domain/account"
	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/authorization"
)

// AccountMapper converts between the account aggregate and its
// persistence model.
type AccountMapper interface {
	ToEntity(model *models.AccountModel) (*account.Account, error)
	ToModel(entity *account.Account) (*models.AccountModel, error)
	ToEntities(models []*models.AccountModel) ([]*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToEntity(model *models.AccountModel) (*account.Account, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	status, err := vo.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account status: %w", err)
	}

	authData := &account.AuthData{
		Provisioned:                model.Provisioned,
		LockReason:                 model.LockReason,
		LockedUntil:                model.LockedUntil,
		FailedLoginAttempts:        model.FailedLoginAttempts,
		MustChangePassword:         model.MustChangePassword,
		PasswordHash:               model.PasswordHash,
		LastPasswordChangeAt:       model.LastPasswordChangeAt,
		EmailVerifiedAt:            model.EmailVerifiedAt,
		EmailVerificationToken:     model.EmailVerificationTokenHash,
		EmailVerificationExpiresAt: model.EmailVerificationExpiresAt,
		PasswordResetToken:         model.PasswordResetTokenHash,
		PasswordResetExpiresAt:     model.PasswordResetExpiresAt,
		LastLoginAt:                model.LastLoginAt,
	}

	entity, err := account.Reconstruct(
		model.ID,
		email,
		model.Username,
		model.FullName,
		model.Phone,
		authorization.ParseUserRole(model.Role),
		status,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
		authData,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct account entity: %w", err)
	}

	return entity, nil
}

func (m *AccountMapperImpl) ToModel(entity *account.Account) (*models.AccountModel, error) {
	if entity == nil {
		return nil, nil
	}

	authData := entity.GetAuthData()

	return &models.AccountModel{
		ID:                         entity.ID(),
		Email:                      entity.Email().String(),
		Username:                   entity.Username(),
		FullName:                   entity.Name(),
		Phone:                      entity.Phone(),
		Role:                       string(entity.Role()),
		Status:                     entity.Status().String(),
		Provisioned:                authData.Provisioned,
		LockReason:                 authData.LockReason,
		LockedUntil:                authData.LockedUntil,
		FailedLoginAttempts:        authData.FailedLoginAttempts,
		MustChangePassword:         authData.MustChangePassword,
		PasswordHash:               authData.PasswordHash,
		LastPasswordChangeAt:       authData.LastPasswordChangeAt,
		EmailVerifiedAt:            authData.EmailVerifiedAt,
		EmailVerificationTokenHash: authData.EmailVerificationToken,
		EmailVerificationExpiresAt: authData.EmailVerificationExpiresAt,
		PasswordResetTokenHash:     authData.PasswordResetToken,
		PasswordResetExpiresAt:     authData.PasswordResetExpiresAt,
		LastLoginAt:                authData.LastLoginAt,
		Version:                    entity.Version(),
		CreatedAt:                  entity.CreatedAt(),
		UpdatedAt:                  entity.UpdatedAt(),
	}, nil
}

func (m *AccountMapperImpl) ToEntities(accountModels []*models.AccountModel) ([]*account.Account, error) {
	entities := make([]*account.Account, 0, len(accountModels))
	for _, model := range accountModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
