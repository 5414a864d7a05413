package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/backend/internal/domain/shared"
	"github.com/littlelemon/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// BaseHandler carries the shared response helpers
type BaseHandler struct {
	logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.Success(data))
}

func (h *BaseHandler) respondWithMeta(c *gin.Context, status int, data interface{}, meta *dto.Meta) {
	c.JSON(status, dto.SuccessWithMeta(data, meta))
}

// respondError translates a domain error into the envelope with the
// right status; anything unrecognized becomes a logged 500
func (h *BaseHandler) respondError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.StatusForCode(domainErr.Code), dto.Error(domainErr.Code, domainErr.Message))
		return
	}

	h.logger.Error("unhandled error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.Error(dto.CodeInternal, "internal server error"))
}

func (h *BaseHandler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorWithDetails(dto.CodeInvalidInput, "invalid request", err.Error()))
}

// uintParam parses a numeric path parameter
func (h *BaseHandler) uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(dto.CodeInvalidInput, "invalid "+name))
		return 0, false
	}
	return uint(id), true
}
