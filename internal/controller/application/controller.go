// Package application provides HTTP handlers for job application operations.
package application

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cargo-backend/internal/database"
	"cargo-backend/internal/model"
	"cargo-backend/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
}

// NewApplicationController creates a new instance of ApplicationController with the provided database connection.
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

func (h *ApplicationController) internalError(c *gin.Context, err error, msg string) {
	utilities.RequestLog(c, h.DB.Log).WithFields(database.ErrorFields(err)).Error(msg)
	c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: msg})
}

// CreateApplication submits a new driver job application.
// @Summary Submit job application
// @Description Public endpoint. Status of a new application is always pending, any status in the body is ignored.
// @Tags Application
// @Accept json
// @Produce json
// @Param application body model.JobApplicationCreate true "Application information"
// @Success 201 {object} model.JobApplicationResponse "Application stored"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid request body"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [post]
func (h *ApplicationController) CreateApplication(c *gin.Context) {
	var in model.JobApplicationCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		utilities.AbortWithBindError(c, err)
		return
	}

	row := model.NewJobApplication(in)
	err := h.DB.UnitOfWork(c.Request.Context(), func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		h.internalError(c, err, "Failed to create application")
		return
	}

	utilities.RequestLog(c, h.DB.Log).WithField("application_id", row.ID).Info("application submitted")
	c.JSON(http.StatusCreated, row.ToResponse())
}

// ListApplications returns applications newest first.
// @Summary List job applications
// @Description Admin only when admin credentials are configured
// @Tags Application
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Number of rows to skip" default(0)
// @Param limit query int false "Maximum number of rows, capped by the server" default(100)
// @Param status_filter query string false "Only return applications with this status" Enums(pending, reviewed, interview, hired, rejected)
// @Success 200 {array} model.JobApplicationResponse "Applications, newest first"
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid query parameter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [get]
func (h *ApplicationController) ListApplications(c *gin.Context) {
	page, ok := utilities.ParsePage(c, h.DB.Config.API.DefaultPageSize, h.DB.Config.API.MaxPageSize)
	if !ok {
		return
	}

	status := model.ApplicationStatus(c.Query("status_filter"))
	if status != "" && !status.Valid() {
		utilities.AbortWithFieldError(c, "status_filter", "is not a valid application status")
		return
	}

	var rows []model.JobApplication
	err := h.DB.UnitOfWork(c.Request.Context(), func(tx *gorm.DB) error {
		query := tx.Model(&model.JobApplication{})
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query.Order("created_at DESC").Order("id DESC").
			Offset(page.Skip).Limit(page.Limit).
			Find(&rows).Error
	})
	if err != nil {
		h.internalError(c, err, "Failed to fetch applications")
		return
	}

	c.JSON(http.StatusOK, model.ToJobApplicationResponses(rows))
}

// GetApplication returns a single application.
// @Summary Get job application by id
// @Tags Application
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application id"
// @Success 200 {object} model.JobApplicationResponse "Application"
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 422 {object} utilities.ValidationErrorResponse "Id is not an integer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id} [get]
func (h *ApplicationController) GetApplication(c *gin.Context) {
	id, ok := utilities.ParseID(c, "id")
	if !ok {
		return
	}

	var row model.JobApplication
	err := h.DB.UnitOfWork(c.Request.Context(), func(tx *gorm.DB) error {
		return tx.First(&row, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		h.internalError(c, err, "Failed to fetch application")
		return
	}

	c.JSON(http.StatusOK, row.ToResponse())
}

// UpdateApplicationStatus moves an application to any other status.
// @Summary Update job application status
// @Description Any status may follow any other status
// @Tags Application
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application id"
// @Param status body model.JobApplicationStatusUpdate true "New status"
// @Success 200 {object} model.JobApplicationResponse "Updated application"
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid id or status"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id}/status [patch]
func (h *ApplicationController) UpdateApplicationStatus(c *gin.Context) {
	id, ok := utilities.ParseID(c, "id")
	if !ok {
		return
	}

	var in model.JobApplicationStatusUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utilities.AbortWithBindError(c, err)
		return
	}

	var row model.JobApplication
	err := h.DB.UnitOfWork(c.Request.Context(), func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, id).Error; err != nil {
			return err
		}
		row.SetStatus(in.Status, tx.NowFunc())
		// Updates never falls back to an insert, so a row deleted meanwhile stays deleted
		res := tx.Model(&row).Select("status", "updated_at").Updates(map[string]interface{}{
			"status":     row.Status,
			"updated_at": row.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		h.internalError(c, err, "Failed to update application status")
		return
	}

	utilities.RequestLog(c, h.DB.Log).
		WithField("application_id", row.ID).
		WithField("status", row.Status).
		Info("application status updated")
	c.JSON(http.StatusOK, row.ToResponse())
}

// DeleteApplication removes an application permanently.
// @Summary Delete job application
// @Tags Application
// @Security BearerAuth
// @Param id path int true "Application id"
// @Success 204 "Application deleted"
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 422 {object} utilities.ValidationErrorResponse "Id is not an integer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id} [delete]
func (h *ApplicationController) DeleteApplication(c *gin.Context) {
	id, ok := utilities.ParseID(c, "id")
	if !ok {
		return
	}

	err := h.DB.UnitOfWork(c.Request.Context(), func(tx *gorm.DB) error {
		result := tx.Delete(&model.JobApplication{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		h.internalError(c, err, "Failed to delete application")
		return
	}

	utilities.RequestLog(c, h.DB.Log).WithField("application_id", id).Info("application deleted")
	c.Status(http.StatusNoContent)
}
