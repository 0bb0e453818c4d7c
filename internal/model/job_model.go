package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type Job struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements string    `gorm:"type:text;not null" json:"requirements"`
	Location     string    `gorm:"type:varchar(255);not null" json:"location"`
	Type         JobType   `gorm:"type:varchar(20);not null" json:"type"`
	SalaryRange  string    `gorm:"type:varchar(255);not null" json:"salary_range"`
	Category     string    `gorm:"type:varchar(255);not null" json:"category"`
	Status       JobStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	RecruiterID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recruiter_id"`
	Recruiter    *User     `gorm:"foreignKey:RecruiterID;constraint:OnDelete:CASCADE" json:"recruiter,omitempty"`
	// Denormalized from the owning recruiter's profile at create time.
	CompanyName         string    `gorm:"type:varchar(255)" json:"company_name"`
	ApplicationDeadline time.Time `gorm:"not null" json:"application_deadline"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
