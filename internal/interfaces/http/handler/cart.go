package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appcart "github.com/littlelemon/backend/internal/application/cart"
	"github.com/littlelemon/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// CartHandler serves the per-user cart endpoints
type CartHandler struct {
	BaseHandler
	service *appcart.Service
}

func NewCartHandler(service *appcart.Service, logger *zap.Logger) *CartHandler {
	return &CartHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// List handles GET /cart/menu-items
func (h *CartHandler) List(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	lines, err := h.service.List(c.Request.Context(), p.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, lines)
}

// Add handles POST /cart/menu-items
func (h *CartHandler) Add(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	var req appcart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	line, err := h.service.AddOrUpdate(c.Request.Context(), p.UserID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, line)
}

// Clear handles DELETE /cart/menu-items
func (h *CartHandler) Clear(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	result, err := h.service.Clear(c.Request.Context(), p.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, result)
}
