package model

import (
	"time"
)

// ApplicationStatus is the lifecycle stage of a job application
type ApplicationStatus string

const (
	// ApplicationStatusPending indicates that the application is waiting for review
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusReviewed indicates that someone has looked at the application
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	// ApplicationStatusInterview indicates that the applicant was invited to an interview
	ApplicationStatusInterview ApplicationStatus = "interview"
	// ApplicationStatusHired indicates that the applicant was hired
	ApplicationStatusHired ApplicationStatus = "hired"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every valid status in display order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusInterview,
	ApplicationStatusHired,
	ApplicationStatusRejected,
}

// Valid reports whether s is one of the enumerated statuses.
func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// JobApplication is the gorm row for a driver job application.
// Address fields and date/country of birth are deprecated but kept for
// compatibility with existing databases.
type JobApplication struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	FirstName      string  `gorm:"size:100;not null"`
	LastName       string  `gorm:"size:100;not null"`
	Email          string  `gorm:"size:255;not null;index"`
	Phone          string  `gorm:"size:20;not null"`
	DateOfBirth    *string `gorm:"size:20"`
	CountryOfBirth *string `gorm:"size:100"`

	Address *string `gorm:"size:255"`
	City    *string `gorm:"size:100"`
	State   *string `gorm:"size:100"`
	ZipCode *string `gorm:"size:20"`

	YearsExperience *int    `gorm:"type:integer"`
	CDLClass        *string `gorm:"column:cdl_class;size:10"`
	CDLExpiration   *string `gorm:"column:cdl_expiration;size:20"`
	PreviousJobs    *string `gorm:"type:text"`
	Message         *string `gorm:"type:text"`

	Status ApplicationStatus `gorm:"size:20;not null;default:'pending';index"`

	CreatedAt time.Time  `gorm:"not null;autoCreateTime"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

// JobApplicationCreate is the accepted body of an application submission.
// Any status-like field in the request is ignored.
type JobApplicationCreate struct {
	FirstName      string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string  `json:"last_name" binding:"required,min=1,max=100"`
	Email          string  `json:"email" binding:"required,email,max=255"`
	Phone          string  `json:"phone" binding:"required,min=10,max=20"`
	DateOfBirth    *string `json:"date_of_birth" binding:"omitempty,max=20"`
	CountryOfBirth *string `json:"country_of_birth" binding:"omitempty,max=100"`

	Address *string `json:"address" binding:"omitempty,max=255"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	State   *string `json:"state" binding:"omitempty,max=100"`
	ZipCode *string `json:"zip_code" binding:"omitempty,max=20"`

	YearsExperience *WholeNumber `json:"years_experience" binding:"omitempty,min=0" swaggertype:"integer"`
	CDLClass        *string      `json:"cdl_class" binding:"omitempty,max=10"`
	CDLExpiration   *string      `json:"cdl_expiration" binding:"omitempty,max=20"`
	PreviousJobs    *string      `json:"previous_jobs"`
	Message         *string      `json:"message"`
}

// JobApplicationStatusUpdate is the body of a status change.
type JobApplicationStatusUpdate struct {
	Status ApplicationStatus `json:"status" binding:"required,application_status"`
}

// JobApplicationResponse is the shape returned to callers.
type JobApplicationResponse struct {
	ID              uint              `json:"id"`
	FirstName       string            `json:"first_name"`
	LastName        string            `json:"last_name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	CountryOfBirth  *string           `json:"country_of_birth"`
	DateOfBirth     *string           `json:"date_of_birth"`
	Address         *string           `json:"address"`
	City            *string           `json:"city"`
	State           *string           `json:"state"`
	ZipCode         *string           `json:"zip_code"`
	YearsExperience *int              `json:"years_experience"`
	CDLClass        *string           `json:"cdl_class"`
	CDLExpiration   *string           `json:"cdl_expiration"`
	PreviousJobs    *string           `json:"previous_jobs"`
	Message         *string           `json:"message"`
	Status          ApplicationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at"`
}

// NewJobApplication maps a create schema to a new row. Status is always pending.
func NewJobApplication(in JobApplicationCreate) JobApplication {
	return JobApplication{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		DateOfBirth:     in.DateOfBirth,
		CountryOfBirth:  in.CountryOfBirth,
		Address:         in.Address,
		City:            in.City,
		State:           in.State,
		ZipCode:         in.ZipCode,
		YearsExperience: in.YearsExperience.IntPtr(),
		CDLClass:        in.CDLClass,
		CDLExpiration:   in.CDLExpiration,
		PreviousJobs:    in.PreviousJobs,
		Message:         in.Message,
		Status:          ApplicationStatusPending,
	}
}

// SetStatus overwrites the status and stamps UpdatedAt.
func (a *JobApplication) SetStatus(status ApplicationStatus, now time.Time) {
	a.Status = status
	a.UpdatedAt = &now
}

// ToResponse maps the row to its response schema.
func (a *JobApplication) ToResponse() JobApplicationResponse {
	return JobApplicationResponse{
		ID:              a.ID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Phone:           a.Phone,
		CountryOfBirth:  a.CountryOfBirth,
		DateOfBirth:     a.DateOfBirth,
		Address:         a.Address,
		City:            a.City,
		State:           a.State,
		ZipCode:         a.ZipCode,
		YearsExperience: a.YearsExperience,
		CDLClass:        a.CDLClass,
		CDLExpiration:   a.CDLExpiration,
		PreviousJobs:    a.PreviousJobs,
		Message:         a.Message,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ToJobApplicationResponses maps a page of rows, never returning nil.
func ToJobApplicationResponses(rows []JobApplication) []JobApplicationResponse {
	out := make([]JobApplicationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToResponse())
	}
	return out
}
