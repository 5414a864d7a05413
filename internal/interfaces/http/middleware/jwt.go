package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/backend/internal/domain/identity"
	"github.com/littlelemon/backend/internal/infrastructure/auth"
	"github.com/littlelemon/backend/internal/interfaces/http/dto"
)

// PrincipalKey is the context key the resolved caller is stored under
const PrincipalKey = "principal"

// Authenticate resolves the caller once per request. Requests without an
// Authorization header proceed as anonymous; a present but invalid token
// is rejected outright.
func Authenticate(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(PrincipalKey, identity.Anonymous())
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.Error(dto.CodeUnauthorized, "invalid authorization header"))
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.Error(dto.CodeUnauthorized, "invalid or expired token"))
			return
		}

		c.Set(PrincipalKey, identity.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     identity.ResolveRole(claims.IsAdmin, claims.Groups),
		})
		c.Next()
	}
}

// CurrentPrincipal reads the caller resolved by Authenticate. Requests
// that never passed through it count as anonymous.
func CurrentPrincipal(c *gin.Context) identity.Principal {
	if v, ok := c.Get(PrincipalKey); ok {
		if p, ok := v.(identity.Principal); ok {
			return p
		}
	}
	return identity.Anonymous()
}
