package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/account"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email     string
	IPAddress string
	UserAgent string
}

// RequestPasswordResetUseCase always reports success to the caller; an
// unknown email silently does nothing so the endpoint cannot be used to
// probe which addresses have accounts.
type RequestPasswordResetUseCase struct {
	accountRepo  account.Repository
	activityRepo account.ActivityRepository
	mailer       EmailSender
	tokenCfg     config.TokenConfig
	logger       logger.Interface
}

func NewRequestPasswordResetUseCase(
	accountRepo account.Repository,
	activityRepo account.ActivityRepository,
	mailer EmailSender,
	tokenCfg config.TokenConfig,
	log logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		accountRepo:  accountRepo,
		activityRepo: activityRepo,
		mailer:       mailer,
		tokenCfg:     tokenCfg,
		logger:       log,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	acc, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up account for reset", "error", err)
		return nil
	}
	if acc == nil {
		return nil
	}

	ttl := time.Duration(uc.tokenCfg.ResetExpiresMinutes) * time.Minute
	token, err := acc.GeneratePasswordResetToken(ttl)
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err, "account_id", acc.ID())
		return nil
	}

	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		uc.logger.Errorw("failed to persist reset token", "error", err, "account_id", acc.ID())
		return nil
	}

	if err := uc.mailer.SendPasswordResetEmail(acc.Email().String(), token.Value()); err != nil {
		uc.logger.Errorw("failed to send reset email", "error", err, "account_id", acc.ID())
		return nil
	}

	accountID := acc.ID()
	entry := account.NewActivityEntry(&accountID, account.ActivityPasswordResetRequested, "password reset requested", cmd.IPAddress, cmd.UserAgent, nil)
	if err := uc.activityRepo.Append(entry); err != nil {
		uc.logger.Warnw("failed to append reset-request activity", "error", err)
	}

	uc.logger.Infow("password reset requested", "account_id", acc.ID())
	return nil
}
