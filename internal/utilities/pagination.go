package utilities

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page is an offset/limit window over a list endpoint.
type Page struct {
	Skip  int
	Limit int
}

// ParsePage reads the skip and limit query parameters. Missing values take
// the defaults, limit is capped at maxLimit. A non-integer or negative value
// aborts the request with 422 and returns false.
func ParsePage(c *gin.Context, defaultLimit int, maxLimit int) (Page, bool) {
	page := Page{Skip: 0, Limit: defaultLimit}

	if raw, ok := c.GetQuery("skip"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			AbortWithFieldError(c, "skip", "must be a non-negative integer")
			return page, false
		}
		page.Skip = n
	}

	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			AbortWithFieldError(c, "limit", "must be a non-negative integer")
			return page, false
		}
		page.Limit = n
	}

	if maxLimit > 0 && page.Limit > maxLimit {
		page.Limit = maxLimit
	}
	return page, true
}

// ParseID reads a positive integer path parameter. It aborts with 422 and
// returns false when the value is not one.
func ParseID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		AbortWithFieldError(c, name, "must be a positive integer")
		return 0, false
	}
	return uint(n), true
}
