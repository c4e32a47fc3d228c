package usecases

import (
	"context"

	"scholaris/internal/domain/account"
	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
	IPAddress   string
	UserAgent   string
}

// ResetPasswordUseCase consumes a single-use reset token. Completing the
// reset ends every session of the account.
type ResetPasswordUseCase struct {
	accountRepo account.Repository
	uow         account.UnitOfWork
	hasher      account.PasswordHasher
	mailer      EmailSender
	logger      logger.Interface
}

func NewResetPasswordUseCase(
	accountRepo account.Repository,
	uow account.UnitOfWork,
	hasher account.PasswordHasher,
	mailer EmailSender,
	log logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		accountRepo: accountRepo,
		uow:         uow,
		hasher:      hasher,
		mailer:      mailer,
		logger:      log,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	// Wrong, consumed and expired tokens all get the same rejection so
	// the endpoint cannot be used to probe token state.
	token, err := vo.NewTokenFromValue(cmd.Token)
	if err != nil {
		return errors.NewTokenInvalidOrExpiredError("reset")
	}

	acc, err := uc.accountRepo.GetByResetTokenHash(ctx, token.Hash())
	if err != nil {
		return err
	}
	if acc == nil {
		return errors.NewTokenInvalidOrExpiredError("reset")
	}

	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := acc.ResetPassword(cmd.Token, newPassword, uc.hasher); err != nil {
		if err == account.ErrInvalidToken {
			return errors.NewTokenInvalidOrExpiredError("reset")
		}
		return errors.NewValidationError(err.Error())
	}

	err = uc.uow.Do(ctx, func(repos account.TxRepos) error {
		if err := repos.Accounts.Update(ctx, acc); err != nil {
			return err
		}
		if err := repos.Sessions.EndByAccountID(acc.ID(), account.EndReasonPasswordChanged); err != nil {
			return err
		}
		accountID := acc.ID()
		entry := account.NewActivityEntry(&accountID, account.ActivityPasswordResetCompleted, "password reset completed", cmd.IPAddress, cmd.UserAgent, nil)
		return repos.Activity.Append(entry)
	})
	if err != nil {
		return err
	}

	if err := uc.mailer.SendPasswordChangedEmail(acc.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "error", err, "account_id", acc.ID())
	}

	uc.logger.Infow("password reset completed", "account_id", acc.ID())
	return nil
}
