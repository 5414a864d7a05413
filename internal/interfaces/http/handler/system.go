package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// SystemHandler serves operational endpoints
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

func NewSystemHandler(db *persistence.Database, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{BaseHandler: NewBaseHandler(logger), db: db}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if err := h.db.Ping(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status})
}
