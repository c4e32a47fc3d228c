package auth

import (
	"scholaris/internal/application/account/usecases"
	"scholaris/internal/shared/authorization"
)

// TokenAdapter exposes the JWT service through the application-layer
// token port.
type TokenAdapter struct {
	jwt *JWTService
}

func NewTokenAdapter(jwt *JWTService) *TokenAdapter {
	return &TokenAdapter{jwt: jwt}
}

func (a *TokenAdapter) Generate(accountID uint, sessionID string, role authorization.UserRole) (*usecases.TokenPair, error) {
	pair, err := a.jwt.Generate(accountID, sessionID, role)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *TokenAdapter) Verify(token string) (*usecases.TokenClaims, error) {
	claims, err := a.jwt.Verify(token)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenClaims{
		AccountID: claims.AccountID,
		SessionID: claims.SessionID,
		Role:      claims.Role,
		TokenType: string(claims.TokenType),
	}, nil
}

func (a *TokenAdapter) Hash(token string) string {
	return HashToken(token)
}
