package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/littlelemon/backend/internal/application/catalog"
	"github.com/littlelemon/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MenuItemHandler serves the menu item endpoints
type MenuItemHandler struct {
	BaseHandler
	service *appcatalog.MenuItemService
}

func NewMenuItemHandler(service *appcatalog.MenuItemService, logger *zap.Logger) *MenuItemHandler {
	return &MenuItemHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// List handles GET /menu-items
func (h *MenuItemHandler) List(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondWithMeta(c, http.StatusOK, page.Items, &dto.Meta{Page: page.Page, PerPage: page.PerPage})
}

// Get handles GET /menu-items/:id
func (h *MenuItemHandler) Get(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, item)
}

// Create handles POST /menu-items
func (h *MenuItemHandler) Create(c *gin.Context) {
	var req appcatalog.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, item)
}

// Update handles PUT /menu-items/:id
func (h *MenuItemHandler) Update(c *gin.Context) {
	id, ok := h.uintParam(c, "id")
	if !ok {
		return
	}
	var req appcatalog.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, item)
}

// Delete handles DELETE /menu-items/:id
func (h *MenuItemHandler) Delete(c *gin.Context) {
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

// parseQuery turns the raw query string into a MenuQuery. Numeric
// parameters that fail to parse are rejected rather than silently
// defaulted.
func (h *MenuItemHandler) parseQuery(c *gin.Context) (appcatalog.MenuQuery, bool) {
	q := appcatalog.DefaultMenuQuery()
	q.Category = c.Query("category")
	q.Search = c.Query("search")

	if raw := c.Query("to_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error(dto.CodeInvalidInput, "invalid to_price"))
			return q, false
		}
		q.ToPrice = &price
	}

	if raw := c.Query("ordering"); raw != "" {
		q.Ordering = strings.Split(raw, ",")
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, dto.Error(dto.CodeInvalidInput, "invalid page"))
			return q, false
		}
		q.Page = page
	}
	if raw := c.Query("perpage"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 {
			c.JSON(http.StatusBadRequest, dto.Error(dto.CodeInvalidInput, "invalid perpage"))
			return q, false
		}
		q.PerPage = perPage
	}

	return q, true
}
