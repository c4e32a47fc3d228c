package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/account"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/logger"
)

func newRefreshFixture(t *testing.T, session *account.Session) (*RefreshTokenUseCase, *mockSessionRepository, *mockTokenService) {
	t.Helper()

	sessionRepo := &mockSessionRepository{
		GetByRefreshTokenHashFunc: func(refreshTokenHash string) (*account.Session, error) {
			if session != nil && session.RefreshTokenHash == refreshTokenHash {
				return session, nil
			}
			return nil, assert.AnError
		},
	}
	tokens := &mockTokenService{
		VerifyFunc: func(token string) (*TokenClaims, error) {
			return &TokenClaims{
				AccountID: 7,
				SessionID: session.ID,
				Role:      authorization.RoleTeacher,
				TokenType: "refresh",
			}, nil
		},
	}
	uc := NewRefreshTokenUseCase(sessionRepo, tokens, logger.NewLogger())
	return uc, sessionRepo, tokens
}

func TestRefreshTokenRotatesPair(t *testing.T) {
	session, err := account.NewSession(7, "203.0.113.9", "ua", account.LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)
	session.RefreshTokenHash = "hash:old-refresh"

	uc, sessionRepo, _ := newRefreshFixture(t, session)

	var updated *account.Session
	sessionRepo.UpdateFunc = func(s *account.Session) error {
		updated = s
		return nil
	}

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "old-refresh"})
	require.NoError(t, err)

	assert.NotEqual(t, "old-refresh", result.RefreshToken)
	require.NotNil(t, updated)
	assert.Equal(t, "hash:"+result.AccessToken, updated.TokenHash)
	assert.Equal(t, "hash:"+result.RefreshToken, updated.RefreshTokenHash)
	assert.WithinDuration(t, time.Now(), updated.LastActivityAt, time.Second)
}

func TestRefreshTokenReplayedTokenNoLongerResolves(t *testing.T) {
	session, err := account.NewSession(7, "203.0.113.9", "ua", account.LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)
	session.RefreshTokenHash = "hash:old-refresh"

	uc, _, _ := newRefreshFixture(t, session)

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "old-refresh"})
	require.NoError(t, err)

	// The stored hash was rotated, so the old token finds no session.
	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "old-refresh"})
	require.Error(t, err)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	session, err := account.NewSession(7, "203.0.113.9", "ua", account.LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)

	uc, _, tokens := newRefreshFixture(t, session)
	tokens.VerifyFunc = func(token string) (*TokenClaims, error) {
		return &TokenClaims{AccountID: 7, SessionID: session.ID, Role: authorization.RoleTeacher, TokenType: "access"}, nil
	}

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "some-access-token"})
	require.Error(t, err)
}

func TestRefreshTokenRejectsEndedSession(t *testing.T) {
	session, err := account.NewSession(7, "203.0.113.9", "ua", account.LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)
	session.RefreshTokenHash = "hash:old-refresh"
	session.End(account.EndReasonAdminRevoked)

	uc, _, _ := newRefreshFixture(t, session)

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "old-refresh"})
	require.Error(t, err)
}

func TestRefreshTokenRejectsSessionMismatch(t *testing.T) {
	session, err := account.NewSession(7, "203.0.113.9", "ua", account.LoginMethodPassword, time.Now().Add(time.Hour))
	require.NoError(t, err)
	session.RefreshTokenHash = "hash:old-refresh"

	uc, _, tokens := newRefreshFixture(t, session)
	tokens.VerifyFunc = func(token string) (*TokenClaims, error) {
		return &TokenClaims{AccountID: 7, SessionID: "some-other-session", Role: authorization.RoleTeacher, TokenType: "refresh"}, nil
	}

	_, err = uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "old-refresh"})
	require.Error(t, err)
}
