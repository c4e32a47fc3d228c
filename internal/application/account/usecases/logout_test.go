package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/account"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

func TestLogoutEndsActiveSession(t *testing.T) {
	session, err := account.NewSession(7, "203.0.113.9", "ua", account.LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)

	sessionRepo := &mockSessionRepository{
		GetByIDFunc: func(sessionID string) (*account.Session, error) {
			return session, nil
		},
	}
	activityRepo := &mockActivityRepository{}
	uc := NewLogoutUseCase(sessionRepo, activityRepo, logger.NewLogger())

	err = uc.Execute(context.Background(), LogoutCommand{SessionID: session.ID, AccountID: 7})
	require.NoError(t, err)

	assert.False(t, session.Active)
	require.NotNil(t, session.EndReason)
	assert.Equal(t, account.EndReasonUserLogout, *session.EndReason)
	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, account.ActivityLogout, activityRepo.entries[0].Type)
}

func TestLogoutUnknownSessionIsNoOp(t *testing.T) {
	sessionRepo := &mockSessionRepository{
		GetByIDFunc: func(sessionID string) (*account.Session, error) {
			return nil, errors.NewNotFoundError("session not found")
		},
	}
	activityRepo := &mockActivityRepository{}
	uc := NewLogoutUseCase(sessionRepo, activityRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), LogoutCommand{SessionID: "missing", AccountID: 7})
	require.NoError(t, err)
	assert.Empty(t, activityRepo.entries)
}

func TestLogoutTwiceIsIdempotent(t *testing.T) {
	session, err := account.NewSession(7, "203.0.113.9", "ua", account.LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)

	updates := 0
	sessionRepo := &mockSessionRepository{
		GetByIDFunc: func(sessionID string) (*account.Session, error) {
			return session, nil
		},
		UpdateFunc: func(s *account.Session) error {
			updates++
			return nil
		},
	}
	activityRepo := &mockActivityRepository{}
	uc := NewLogoutUseCase(sessionRepo, activityRepo, logger.NewLogger())

	cmd := LogoutCommand{SessionID: session.ID, AccountID: 7}
	require.NoError(t, uc.Execute(context.Background(), cmd))
	require.NoError(t, uc.Execute(context.Background(), cmd))

	assert.Equal(t, 1, updates)
	assert.Len(t, activityRepo.entries, 1)
}
