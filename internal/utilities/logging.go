package utilities

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// RequestLog returns a log entry tagged with the request id of c, when present.
func RequestLog(c *gin.Context, log *logrus.Logger) *logrus.Entry {
	entry := logrus.NewEntry(log)
	if id := c.GetString(RequestIDKey); id != "" {
		entry = entry.WithField(RequestIDKey, id)
	}
	return entry
}
