package model

import "time"

// ContactMessage is the gorm row for a message sent through the contact form.
// SMSConsent is stored as 0/1.
type ContactMessage struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	FirstName   string    `gorm:"size:100;not null"`
	LastName    *string   `gorm:"size:100"`
	Email       string    `gorm:"size:255;not null"`
	Phone       *string   `gorm:"size:20"`
	CompanyName *string   `gorm:"size:255"`
	Position    *string   `gorm:"size:100"`
	Message     string    `gorm:"type:text;not null"`
	SMSConsent  int       `gorm:"column:sms_consent;not null;default:0"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"`
}

// ContactMessageCreate is the accepted body of a contact form submission.
type ContactMessageCreate struct {
	FirstName   string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName    *string `json:"last_name" binding:"omitempty,max=100"`
	Email       string  `json:"email" binding:"required,email,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
	Position    *string `json:"position" binding:"omitempty,max=100"`
	Message     string  `json:"message" binding:"required,min=1"`
	SMSConsent  bool    `json:"sms_consent"`
}

// ContactMessageResponse is the shape returned to callers. sms_consent stays
// an integer so existing clients keep working.
type ContactMessageResponse struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    *string   `json:"last_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	CompanyName *string   `json:"company_name"`
	Position    *string   `json:"position"`
	Message     string    `json:"message"`
	SMSConsent  int       `json:"sms_consent"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewContactMessage maps a create schema to a new row.
func NewContactMessage(in ContactMessageCreate) ContactMessage {
	consent := 0
	if in.SMSConsent {
		consent = 1
	}
	return ContactMessage{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		CompanyName: in.CompanyName,
		Position:    in.Position,
		Message:     in.Message,
		SMSConsent:  consent,
	}
}

// ToResponse maps the row to its response schema.
func (m *ContactMessage) ToResponse() ContactMessageResponse {
	return ContactMessageResponse{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		CompanyName: m.CompanyName,
		Position:    m.Position,
		Message:     m.Message,
		SMSConsent:  m.SMSConsent,
		CreatedAt:   m.CreatedAt,
	}
}

// ToContactMessageResponses maps a page of rows, never returning nil.
func ToContactMessageResponses(rows []ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToResponse())
	}
	return out
}
