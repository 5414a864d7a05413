package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appidentity "github.com/littlelemon/backend/internal/application/identity"
	"go.uber.org/zap"
)

// GroupHandler serves the staff group membership endpoints. The group
// name is fixed per route, matching how the routes are mounted.
type GroupHandler struct {
	BaseHandler
	service *appidentity.GroupService
	group   string
}

func NewGroupHandler(service *appidentity.GroupService, group string, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{BaseHandler: NewBaseHandler(logger), service: service, group: group}
}

// ListMembers handles GET /groups/<group>/users
func (h *GroupHandler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context(), h.group)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, members)
}

// AddMember handles POST /groups/<group>/users
func (h *GroupHandler) AddMember(c *gin.Context) {
	var req appidentity.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if err := h.service.AddMember(c.Request.Context(), h.group, req.Username); err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, gin.H{"group": h.group, "username": req.Username})
}

// RemoveMember handles DELETE /groups/<group>/users/:username
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	username := c.Param("username")
	if err := h.service.RemoveMember(c.Request.Context(), h.group, username); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
