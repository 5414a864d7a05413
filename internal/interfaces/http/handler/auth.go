package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appidentity "github.com/littlelemon/backend/internal/application/identity"
	"go.uber.org/zap"
)

// AuthHandler serves registration and login
type AuthHandler struct {
	BaseHandler
	service *appidentity.AuthService
}

func NewAuthHandler(service *appidentity.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req appidentity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req appidentity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, resp)
}
