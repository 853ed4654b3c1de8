package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/erp/partners/internal/domain/shared"
	"github.com/erp/partners/internal/infrastructure/logger"
	"github.com/erp/partners/internal/interfaces/http/dto"
	"github.com/erp/partners/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 envelope with data under key. An empty key sends
// only success and message.
func (h *BaseHandler) Success(c *gin.Context, message, key string, data any) {
	h.respond(c, http.StatusOK, message, key, data)
}

// Created sends a 201 envelope with data under key
func (h *BaseHandler) Created(c *gin.Context, message, key string, data any) {
	h.respond(c, http.StatusCreated, message, key, data)
}

// SuccessWith sends a 200 envelope built by the caller
func (h *BaseHandler) SuccessWith(c *gin.Context, resp dto.Response) {
	c.JSON(http.StatusOK, resp)
}

func (h *BaseHandler) respond(c *gin.Context, status int, message, key string, data any) {
	resp := dto.NewSuccessResponse(message)
	if key != "" {
		resp.With(key, data)
	}
	c.JSON(status, resp)
}

// Error sends an error envelope with the given status
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewErrorResponse(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 error envelope
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// InvalidInput sends a 400 error envelope for rejected field values
func (h *BaseHandler) InvalidInput(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, message)
}

// BindingError reports a failed ShouldBind call
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
	case middleware.IsValidationError(err):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, middleware.ValidationMessage(err))
	default:
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Ungültige Anfrage: "+err.Error())
	}
}

// HandleError converts domain errors to their status and code. Anything
// else is logged and answered with a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	_ = c.Error(err)
	logger.GetGinLogger(c).Error("Unexpected error", zap.Error(err))
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, dto.MessageInternal)
}

// partnerID parses the :id path parameter and answers 400 when malformed
func (h *BaseHandler) partnerID(c *gin.Context) (uuid.UUID, bool) {
	return h.uuidParam(c, "id", "Ungültige Partner-ID")
}

func (h *BaseHandler) uuidParam(c *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, message)
		return uuid.Nil, false
	}
	return id, true
}

// listIndex parses the :index path parameter. Range checks are left to
// the domain, which answers out-of-range indexes with 404.
func (h *BaseHandler) listIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.BadRequest(c, "Ungültiger Index")
		return 0, false
	}
	return index, true
}
