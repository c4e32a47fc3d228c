package usecases

import (
	"context"

	"scholaris/internal/domain/account"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshTokenUseCase rotates a token pair. The refresh token is single
// use: its hash is replaced on the session row so a replayed token no
// longer resolves.
type RefreshTokenUseCase struct {
	sessionRepo account.SessionRepository
	tokens      TokenService
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	sessionRepo account.SessionRepository,
	tokens TokenService,
	log logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      log,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewTokenInvalidError("refresh")
	}
	if claims.TokenType != "refresh" {
		return nil, errors.NewTokenInvalidError("refresh")
	}

	session, err := uc.sessionRepo.GetByRefreshTokenHash(uc.tokens.Hash(cmd.RefreshToken))
	if err != nil {
		return nil, errors.NewSessionExpiredError()
	}
	if session.ID != claims.SessionID || !session.Active {
		return nil, errors.NewSessionExpiredError()
	}

	pair, err := uc.tokens.Generate(claims.AccountID, session.ID, claims.Role)
	if err != nil {
		return nil, err
	}

	session.TokenHash = uc.tokens.Hash(pair.AccessToken)
	session.RefreshTokenHash = uc.tokens.Hash(pair.RefreshToken)
	session.UpdateActivity()
	if err := uc.sessionRepo.Update(session); err != nil {
		return nil, err
	}

	uc.logger.Debugw("token pair rotated", "session_id", session.ID)
	return &RefreshTokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
