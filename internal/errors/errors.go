package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error labels carried in the "error" field of every error body. The
// HTTP status carries the category; the label names the condition.
const (
	LabelValidation    = "Validation error"
	LabelUnauthorized  = "Unauthorized"
	LabelAccessDenied  = "Access denied"
	LabelInsufficient  = "Insufficient permissions"
	LabelNotFound      = "Not found"
	LabelConflict      = "Conflict"
	LabelTooLarge      = "File too large"
	LabelInternalError = "Internal server error"
)

// APIError is the uniform error body: {error, message}.
type APIError struct {
	Label   string `json:"error"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError.
func NewAPIError(label, message string) *APIError {
	return &APIError{
		Label:   label,
		Message: message,
	}
}

// RespondWithError sends an error response.
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Validation sends a 400 response.
func Validation(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request body"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(LabelValidation, message))
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Access token required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(LabelUnauthorized, message))
}

// AccessDenied sends a 403 response for the read class of operations.
func AccessDenied(c *gin.Context, message string) {
	if message == "" {
		message = "User does not have access to this resource"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(LabelAccessDenied, message))
}

// InsufficientPermissions sends a 403 response for the write and manage
// class of operations.
func InsufficientPermissions(c *gin.Context, message string) {
	if message == "" {
		message = "User does not have permission to perform this action"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(LabelInsufficient, message))
}

// NotFound sends a 404 response. The label names the missing resource,
// e.g. "Channel not found".
func NotFound(c *gin.Context, label, message string) {
	if label == "" {
		label = LabelNotFound
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(label, message))
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, label, message string) {
	if label == "" {
		label = LabelConflict
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(label, message))
}

// PayloadTooLarge sends a 413 response.
func PayloadTooLarge(c *gin.Context, message string) {
	if message == "" {
		message = "File size must not exceed maximum limit"
	}
	RespondWithError(c, http.StatusRequestEntityTooLarge, NewAPIError(LabelTooLarge, message))
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(LabelInternalError, message))
}
