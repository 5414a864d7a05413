package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/backend/internal/domain/identity"
	"github.com/littlelemon/backend/internal/infrastructure/cache"
	"github.com/littlelemon/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Throttler applies per-caller request rate limits. Anonymous callers
// are keyed by client IP, authenticated callers by user id, so a user's
// budget follows them across addresses.
type Throttler struct {
	store  cache.ThrottleStore
	window time.Duration
	logger *zap.Logger
}

func NewThrottler(store cache.ThrottleStore, window time.Duration, logger *zap.Logger) *Throttler {
	return &Throttler{store: store, window: window, logger: logger}
}

// Limit enforces the given per-window budgets. A store failure lets the
// request through; availability wins over enforcement.
func (t *Throttler) Limit(anonLimit, userLimit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)

		var key string
		var limit int64
		if p.Role == identity.RoleAnonymous {
			key = "anon:" + c.ClientIP()
			limit = anonLimit
		} else {
			key = fmt.Sprintf("user:%d", p.UserID)
			limit = userLimit
		}

		count, err := t.store.Incr(c.Request.Context(), key, t.window)
		if err != nil {
			t.logger.Warn("throttle store unavailable, admitting request",
				zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.Error(dto.CodeThrottled, "request was throttled"))
			return
		}
		c.Next()
	}
}

// LimitScoped enforces a single budget under a named scope regardless of
// caller identity class. Used for the stricter budget on the auth
// endpoints.
func (t *Throttler) LimitScoped(scope string, limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)

		key := scope + ":anon:" + c.ClientIP()
		if p.Role != identity.RoleAnonymous {
			key = fmt.Sprintf("%s:user:%d", scope, p.UserID)
		}

		count, err := t.store.Incr(c.Request.Context(), key, t.window)
		if err != nil {
			t.logger.Warn("throttle store unavailable, admitting request",
				zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.Error(dto.CodeThrottled, "request was throttled"))
			return
		}
		c.Next()
	}
}
