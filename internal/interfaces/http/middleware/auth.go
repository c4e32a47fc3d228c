package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"scholaris/internal/domain/account"
	"scholaris/internal/infrastructure/auth"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

const (
	ContextAccountID = "account_id"
	ContextSessionID = "session_id"
	ContextRole      = "role"

	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// AuthMiddleware verifies the access token and checks that the session it
// is bound to is still active. A revoked or expired session rejects the
// request even when the JWT itself has not expired yet.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	sessions   account.SessionRepository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, sessions account.SessionRepository, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
		logger:     log,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		session, err := m.sessions.GetActiveByID(claims.SessionID)
		if err != nil || session == nil || session.IsExpired() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "session is no longer active")
			c.Abort()
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextSessionID, claims.SessionID)
		c.Set(ContextRole, string(claims.Role))

		c.Next()
	}
}

// tokenFromRequest prefers the HttpOnly cookie and falls back to the
// Authorization header for API clients.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AccountID returns the authenticated account ID from the context.
func AccountID(c *gin.Context) uint {
	if v, ok := c.Get(ContextAccountID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// SessionID returns the authenticated session ID from the context.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

// Role returns the authenticated role string from the context.
func Role(c *gin.Context) string {
	return c.GetString(ContextRole)
}
