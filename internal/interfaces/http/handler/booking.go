package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appbooking "github.com/littlelemon/backend/internal/application/booking"
	"github.com/littlelemon/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BookingHandler serves the table booking endpoints
type BookingHandler struct {
	BaseHandler
	service *appbooking.Service
}

func NewBookingHandler(service *appbooking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// Create handles POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	var req appbooking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	resp, err := h.service.Create(c.Request.Context(), p.UserID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, resp)
}

// List handles GET /bookings
func (h *BookingHandler) List(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)
	bookings, err := h.service.List(c.Request.Context(), p.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, bookings)
}
