// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cargo-backend/internal/validation"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 422 when a request does not pass validation
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// AbortWithBindError responds 422 with field level messages for a binding or
// validation failure. A body over the size cap is answered with 413.
func AbortWithBindError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
		return
	}
	fields, _ := validation.FieldErrors(err)
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:  validation.Describe(err),
		Fields: fields,
	})
}

// AbortWithFieldError responds 422 for a single invalid field, typically a
// query or path parameter.
func AbortWithFieldError(c *gin.Context, field string, msg string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:  "Validation failed",
		Fields: map[string]string{field: msg},
	})
}
