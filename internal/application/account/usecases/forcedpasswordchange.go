package usecases

import (
	"context"

	"scholaris/internal/domain/account"
	vo "scholaris/internal/domain/account/valueobjects"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type ForcedPasswordChangeCommand struct {
	Token           string
	CurrentPassword string
	NewPassword     string
	RememberMe      bool
	IPAddress       string
	UserAgent       string
}

// ForcedPasswordChangeUseCase completes a login that was withheld because
// the account is flagged for a forced change. It consumes the single-use
// token handed out at login, replaces the password and only then
// establishes the session.
type ForcedPasswordChangeUseCase struct {
	accountRepo  account.Repository
	activityRepo account.ActivityRepository
	uow          account.UnitOfWork
	hasher       account.PasswordHasher
	tokens       TokenService
	destinations *authorization.DestinationTable
	policy       *account.SecurityPolicy
	sessionCfg   config.SessionConfig
	mailer       EmailSender
	logger       logger.Interface
}

func NewForcedPasswordChangeUseCase(
	accountRepo account.Repository,
	activityRepo account.ActivityRepository,
	uow account.UnitOfWork,
	hasher account.PasswordHasher,
	tokens TokenService,
	destinations *authorization.DestinationTable,
	policy *account.SecurityPolicy,
	sessionCfg config.SessionConfig,
	mailer EmailSender,
	log logger.Interface,
) *ForcedPasswordChangeUseCase {
	return &ForcedPasswordChangeUseCase{
		accountRepo:  accountRepo,
		activityRepo: activityRepo,
		uow:          uow,
		hasher:       hasher,
		tokens:       tokens,
		destinations: destinations,
		policy:       policy,
		sessionCfg:   sessionCfg,
		mailer:       mailer,
		logger:       log,
	}
}

func (uc *ForcedPasswordChangeUseCase) Execute(ctx context.Context, cmd ForcedPasswordChangeCommand) (*LoginResult, error) {
	token, err := vo.NewTokenFromValue(cmd.Token)
	if err != nil {
		return nil, errors.NewTokenInvalidOrExpiredError("password change")
	}

	acc, err := uc.accountRepo.GetByResetTokenHash(ctx, token.Hash())
	if err != nil {
		return nil, err
	}
	// Tokens not minted by a deferred login (e.g. emailed reset tokens)
	// do not complete one.
	if acc == nil || !acc.MustChangePassword() {
		return nil, errors.NewTokenInvalidOrExpiredError("password change")
	}

	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := acc.VerifyPassword(cmd.CurrentPassword, uc.hasher, uc.policy); err != nil {
		if saveErr := uc.accountRepo.Update(ctx, acc); saveErr != nil {
			uc.logger.Errorw("failed to persist failed-login counter", "error", saveErr, "account_id", acc.ID())
		}
		uc.appendActivity(acc.ID(), account.ActivityLoginFailed, "wrong password during forced change", cmd)
		return nil, errors.NewUnauthorizedError("current password is incorrect")
	}

	if err := acc.ResetPassword(cmd.Token, newPassword, uc.hasher); err != nil {
		return nil, errors.NewTokenInvalidOrExpiredError("password change")
	}

	result, err := finishLogin(ctx, uc.uow, uc.tokens, uc.destinations, uc.sessionCfg, acc, LoginCommand{
		RememberMe: cmd.RememberMe,
		IPAddress:  cmd.IPAddress,
		UserAgent:  cmd.UserAgent,
	})
	if err != nil {
		return nil, err
	}

	uc.appendActivity(acc.ID(), account.ActivityPasswordChanged, "password changed", cmd)

	if err := uc.mailer.SendPasswordChangedEmail(acc.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "error", err, "account_id", acc.ID())
	}

	uc.logger.Infow("forced password change completed",
		"account_id", acc.ID(),
		"session_id", result.SessionID)
	return result, nil
}

func (uc *ForcedPasswordChangeUseCase) appendActivity(accountID uint, activityType account.ActivityType, description string, cmd ForcedPasswordChangeCommand) {
	entry := account.NewActivityEntry(&accountID, activityType, description, cmd.IPAddress, cmd.UserAgent, nil)
	if err := uc.activityRepo.Append(entry); err != nil {
		uc.logger.Warnw("failed to append activity entry", "error", err)
	}
}
