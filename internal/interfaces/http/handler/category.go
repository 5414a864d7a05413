package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/littlelemon/backend/internal/application/catalog"
	"go.uber.org/zap"
)

// CategoryHandler serves the category endpoints
type CategoryHandler struct {
	BaseHandler
	service *appcatalog.CategoryService
}

func NewCategoryHandler(service *appcatalog.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// List handles GET /category
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, cats)
}

// Get handles GET /category/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	cat, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, cat)
}

// Create handles POST /category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req appcatalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	cat, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, cat)
}

// Delete handles DELETE /category/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
