package usecases

import (
	"context"

	"scholaris/internal/domain/account"
	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type ChangePasswordCommand struct {
	AccountID       uint
	CurrentPassword string
	NewPassword     string
	// KeepSessionID survives the change; every other session of the
	// account is ended.
	KeepSessionID string
	IPAddress     string
	UserAgent     string
}

// ChangePasswordUseCase also serves the forced-change path: a successful
// change clears the must-change flag on the aggregate.
type ChangePasswordUseCase struct {
	accountRepo account.Repository
	uow         account.UnitOfWork
	hasher      account.PasswordHasher
	mailer      EmailSender
	logger      logger.Interface
}

func NewChangePasswordUseCase(
	accountRepo account.Repository,
	uow account.UnitOfWork,
	hasher account.PasswordHasher,
	mailer EmailSender,
	log logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		accountRepo: accountRepo,
		uow:         uow,
		hasher:      hasher,
		mailer:      mailer,
		logger:      log,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	acc, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		return err
	}

	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := acc.ChangePassword(cmd.CurrentPassword, newPassword, uc.hasher); err != nil {
		if err == account.ErrInvalidPassword {
			return errors.NewUnauthorizedError("current password is incorrect")
		}
		return errors.NewValidationError(err.Error())
	}

	err = uc.uow.Do(ctx, func(repos account.TxRepos) error {
		if err := repos.Accounts.Update(ctx, acc); err != nil {
			return err
		}
		// Other sessions die with the old credential.
		if err := uc.endOtherSessions(repos.Sessions, cmd.AccountID, cmd.KeepSessionID); err != nil {
			return err
		}
		accountID := acc.ID()
		entry := account.NewActivityEntry(&accountID, account.ActivityPasswordChanged, "password changed", cmd.IPAddress, cmd.UserAgent, nil)
		return repos.Activity.Append(entry)
	})
	if err != nil {
		return err
	}

	if err := uc.mailer.SendPasswordChangedEmail(acc.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "error", err, "account_id", acc.ID())
	}

	uc.logger.Infow("password changed", "account_id", acc.ID())
	return nil
}

func (uc *ChangePasswordUseCase) endOtherSessions(sessions account.SessionRepository, accountID uint, keepID string) error {
	active, err := sessions.GetByAccountID(accountID)
	if err != nil {
		return err
	}
	for _, s := range active {
		if s.ID == keepID || !s.Active {
			continue
		}
		s.End(account.EndReasonPasswordChanged)
		if err := sessions.Update(s); err != nil {
			return err
		}
	}
	return nil
}
