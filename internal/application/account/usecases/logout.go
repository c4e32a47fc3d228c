package usecases

import (
	"context"

	"scholaris/internal/domain/account"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
	AccountID uint
	IPAddress string
	UserAgent string
}

// LogoutUseCase ends a session. Logging out an already ended session is a
// no-op, not an error.
type LogoutUseCase struct {
	sessionRepo  account.SessionRepository
	activityRepo account.ActivityRepository
	logger       logger.Interface
}

func NewLogoutUseCase(
	sessionRepo account.SessionRepository,
	activityRepo account.ActivityRepository,
	log logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo:  sessionRepo,
		activityRepo: activityRepo,
		logger:       log,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	session, err := uc.sessionRepo.GetByID(cmd.SessionID)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Type == errors.ErrorTypeNotFound {
			return nil
		}
		return err
	}

	if !session.Active {
		return nil
	}

	session.End(account.EndReasonUserLogout)
	if err := uc.sessionRepo.Update(session); err != nil {
		return err
	}

	entry := account.NewActivityEntry(&cmd.AccountID, account.ActivityLogout, "logout", cmd.IPAddress, cmd.UserAgent, map[string]any{
		"session_id": session.ID,
	})
	if err := uc.activityRepo.Append(entry); err != nil {
		uc.logger.Warnw("failed to append logout activity", "error", err)
	}

	uc.logger.Infow("session ended", "account_id", cmd.AccountID, "session_id", session.ID)
	return nil
}
