package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/backend/internal/domain/identity"
	"github.com/littlelemon/backend/internal/interfaces/http/dto"
)

// RequireRole gates a route on the caller's role. Anonymous callers get
// 401; authenticated callers below the bar get 403.
func RequireRole(min identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if p.Role == identity.RoleAnonymous {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.Error(dto.CodeUnauthorized, "authentication required"))
			return
		}
		if !p.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.Error(dto.CodeForbidden, "insufficient permissions"))
			return
		}
		c.Next()
	}
}

// RequireAuth admits any authenticated caller
func RequireAuth() gin.HandlerFunc {
	return RequireRole(identity.RoleAuthenticated)
}
