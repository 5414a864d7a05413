package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apprating "github.com/littlelemon/backend/internal/application/rating"
	"github.com/littlelemon/backend/internal/interfaces/http/dto"
	"github.com/littlelemon/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// RatingHandler serves the rating endpoints
type RatingHandler struct {
	BaseHandler
	service *apprating.Service
}

func NewRatingHandler(service *apprating.Service, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// Submit handles POST /ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	var req apprating.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	resp, err := h.service.Submit(c.Request.Context(), p.UserID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, resp)
}

// List handles GET /ratings?menuitem_id=N
func (h *RatingHandler) List(c *gin.Context) {
	raw := c.Query("menuitem_id")
	menuItemID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(dto.CodeInvalidInput, "invalid menuitem_id"))
		return
	}
	ratings, err := h.service.ListForMenuItem(c.Request.Context(), uint(menuItemID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, ratings)
}
