package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cargo-backend/internal/utilities"
)

// SizeLimit caps the request body at maxBodyBytes. A declared Content-Length
// above the cap is answered with 413 right away, a body that turns out larger
// fails to bind and is answered with 413 by the handler.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBodyBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "Request body too large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
