package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/account"
	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type CreateAccountCommand struct {
	Email             string
	Username          string
	FullName          string
	Phone             string
	Role              string
	TemporaryPassword string
}

type CreateAccountResult struct {
	AccountID         uint
	VerificationToken string
}

// CreateAccountUseCase provisions an account on behalf of an
// administrator. The holder logs in with a temporary password and is
// forced to change it on first login.
type CreateAccountUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	mailer      EmailSender
	tokenCfg    config.TokenConfig
	logger      logger.Interface
}

func NewCreateAccountUseCase(
	accountRepo account.Repository,
	hasher account.PasswordHasher,
	mailer EmailSender,
	tokenCfg config.TokenConfig,
	log logger.Interface,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		mailer:      mailer,
		tokenCfg:    tokenCfg,
		logger:      log,
	}
}

func (uc *CreateAccountUseCase) Execute(ctx context.Context, cmd CreateAccountCommand) (*CreateAccountResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	role := authorization.ParseUserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("unknown role")
	}

	if existing, err := uc.accountRepo.GetByEmail(ctx, cmd.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}
	if existing, err := uc.accountRepo.GetByUsername(ctx, cmd.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.NewConflictError("username is already taken")
	}

	acc, err := account.NewAccount(email, cmd.Username, cmd.FullName, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Phone != "" {
		if err := acc.UpdateProfile(cmd.FullName, cmd.Phone); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	password, err := vo.NewPassword(cmd.TemporaryPassword)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := acc.SetPassword(password, uc.hasher); err != nil {
		return nil, err
	}
	acc.RequirePasswordChange()

	ttl := time.Duration(uc.tokenCfg.VerificationExpiresHours) * time.Hour
	token, err := acc.GenerateEmailVerificationToken(ttl)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Create(ctx, acc); err != nil {
		return nil, err
	}

	if err := uc.mailer.SendVerificationEmail(acc.Email().String(), token.Value()); err != nil {
		uc.logger.Warnw("failed to send verification email", "error", err, "account_id", acc.ID())
	}

	uc.logger.Infow("account provisioned",
		"account_id", acc.ID(),
		"role", role.String())
	return &CreateAccountResult{
		AccountID:         acc.ID(),
		VerificationToken: token.Value(),
	}, nil
}
