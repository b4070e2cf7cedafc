package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "catsgram-backend/internal/common/errors"
	"catsgram-backend/internal/common/logger"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error       string `json:"error" example:"post with id = 7 not found"`
	Description string `json:"description" example:"requested resource not found"`
	RequestID   string `json:"request_id,omitempty" example:"1f0c3c8e-6b1c-4a8e-9d7a-2f4f1f0b9c11"`
}

// RequestID middleware для добавления ID запроса
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// Recovery turns panics into an INTERNAL error response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		appErr := apperrors.New(apperrors.ErrCodeInternal, fmt.Sprintf("panic: %v", recovered))
		sendErrorResponse(c, appErr)
	})
}

// Errors renders the last error a handler attached with c.Error.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr, ok := apperrors.As(err)
		if !ok {
			appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "handler error occurred")
		}
		sendErrorResponse(c, appErr)
	}
}

func sendErrorResponse(c *gin.Context, appErr *apperrors.AppError) {
	requestID := GetRequestID(c)
	logError(c, appErr, requestID)

	c.AbortWithStatusJSON(apperrors.HTTPStatus(appErr.Code), ErrorResponse{
		Error:       appErr.PublicMessage(),
		Description: apperrors.Description(appErr.Code),
		RequestID:   requestID,
	})
}

func logError(c *gin.Context, appErr *apperrors.AppError, requestID string) {
	event := logger.Debug()
	msg := "Request rejected"
	if appErr.IsInternal() {
		event = logger.Error()
		msg = "Internal error occurred"
	}

	event = event.
		Str("request_id", requestID).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Str("error_message", appErr.Message)
	if len(appErr.Details) > 0 {
		event = event.Interface("details", appErr.Details)
	}
	if appErr.Cause != nil {
		event = event.Err(appErr.Cause)
	}
	event.Msg(msg)
}

// GetRequestID получает ID запроса из контекста
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
