// Package health provides the liveness and database health probes.
package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cargo-backend/internal/config"
	"cargo-backend/internal/database"
)

// HealthController reports service and database health
type HealthController struct {
	DB *database.DBinstanceStruct
}

// NewHealthController creates a new instance of HealthController
func NewHealthController(db *database.DBinstanceStruct) *HealthController {
	return &HealthController{DB: db}
}

// Response is the liveness payload
type Response struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"77 Cargo API"`
}

// Liveness reports that the process is serving requests. It never touches the database.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} health.Response
// @Router /health [get]
func (h *HealthController) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "healthy", Service: config.ServiceName})
}

// Database pings the database and reports connection pool statistics.
// @Summary Database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Database is up"
// @Failure 503 {object} map[string]string "Database is down"
// @Router /health/db [get]
func (h *HealthController) Database(c *gin.Context) {
	stats := h.DB.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
