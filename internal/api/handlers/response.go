package handlers

import (
	"errors"
	"net/http"

	apperrors "orgbook-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsMissingRequiredField(err), apperrors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidItemKind), errors.Is(err, apperrors.ErrUnknownPipeline):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsMalformedImport(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status its kind maps to
func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, ErrorResponse{Error: message, Details: err.Error()})
}

// respondNotFound writes a 404 for an id that does not resolve
func respondNotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
}
