// Package contact provides HTTP handlers for the contact form.
package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cargo-backend/internal/database"
	"cargo-backend/internal/model"
	"cargo-backend/internal/utilities"
)

// ContactController handles contact message endpoints
type ContactController struct {
	DB *database.DBinstanceStruct
}

// NewContactController creates a new instance of ContactController
func NewContactController(db *database.DBinstanceStruct) *ContactController {
	return &ContactController{
		DB: db,
	}
}

// CreateContactMessage stores a message sent through the contact form.
// @Summary Send contact message
// @Description Public endpoint. sms_consent is accepted as a boolean and returned as 0 or 1.
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body model.ContactMessageCreate true "Contact message"
// @Success 201 {object} model.ContactMessageResponse "Message stored"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid request body"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /contact [post]
func (cc *ContactController) CreateContactMessage(c *gin.Context) {
	var in model.ContactMessageCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		utilities.AbortWithBindError(c, err)
		return
	}

	row := model.NewContactMessage(in)
	err := cc.DB.UnitOfWork(c.Request.Context(), func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		utilities.RequestLog(c, cc.DB.Log).WithFields(database.ErrorFields(err)).Error("failed to store contact message")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, row.ToResponse())
}

// ListContactMessages returns contact messages newest first.
// @Summary List contact messages
// @Description Admin only when admin credentials are configured
// @Tags Contact
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Number of rows to skip" default(0)
// @Param limit query int false "Maximum number of rows, capped by the server" default(100)
// @Success 200 {array} model.ContactMessageResponse "Messages, newest first"
// @Failure 401 {object} utilities.ErrorResponse "Missing or invalid token"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid query parameter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /contact [get]
func (cc *ContactController) ListContactMessages(c *gin.Context) {
	page, ok := utilities.ParsePage(c, cc.DB.Config.API.DefaultPageSize, cc.DB.Config.API.MaxPageSize)
	if !ok {
		return
	}

	var rows []model.ContactMessage
	err := cc.DB.UnitOfWork(c.Request.Context(), func(tx *gorm.DB) error {
		return tx.Order("created_at DESC").Order("id DESC").
			Offset(page.Skip).Limit(page.Limit).
			Find(&rows).Error
	})
	if err != nil {
		utilities.RequestLog(c, cc.DB.Log).WithFields(database.ErrorFields(err)).Error("failed to fetch contact messages")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, model.ToContactMessageResponses(rows))
}
