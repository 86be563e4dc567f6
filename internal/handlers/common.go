package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/crossroads/crossroads-api/internal/logger"
	"github.com/crossroads/crossroads-api/internal/simulation"
	"github.com/crossroads/crossroads-api/internal/validation"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// sendError is a helper function that combines logging and error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleEngineError maps the engine's error taxonomy onto HTTP status
// codes: validation failures are the caller's fault, permanent service
// errors mean the calculator rejected the input, transient ones mean it is
// temporarily unavailable.
func handleEngineError(c *gin.Context, err error) {
	var svcErr *simulation.ServiceError
	switch {
	case validation.IsValidation(err):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.As(err, &svcErr) && svcErr.Permanent:
		sendError(c, http.StatusUnprocessableEntity, "calculator rejected the household", err)
	case errors.As(err, &svcErr):
		sendError(c, http.StatusServiceUnavailable, "calculator temporarily unavailable", err)
	default:
		sendError(c, http.StatusInternalServerError, "internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
