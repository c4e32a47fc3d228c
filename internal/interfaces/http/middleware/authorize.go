package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholaris/internal/infrastructure/permission"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/utils"
)

// PermissionMiddleware enforces role-based access using the casbin
// policies seeded at startup. It must run after AuthMiddleware so the
// role is on the context.
type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, log logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   log,
	}
}

func (m *PermissionMiddleware) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing role")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}
		if !allowed {
			m.logger.Warnw("permission denied",
				"role", role,
				"resource", resource,
				"action", action,
				"path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusForbidden, "permission denied")
			c.Abort()
			return
		}

		c.Next()
	}
}
