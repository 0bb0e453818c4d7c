package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending:
		return next == ApplicationStatusReviewed || next == ApplicationStatusAccepted || next == ApplicationStatusRejected
	case ApplicationStatusReviewed:
		return next == ApplicationStatusAccepted || next == ApplicationStatusRejected
	}
	return false
}

// Application links a job seeker, a job and a resume. The composite
// unique index closes the race between the duplicate check and the
// insert: the database rejects a second (job, job_seeker) row even if
// two requests pass the check concurrently.
type Application struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	JobID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"job_id"`
	Job         *Job              `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	JobSeekerID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_seeker" json:"job_seeker_id"`
	JobSeeker   *User             `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"job_seeker,omitempty"`
	ResumeID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"resume_id"`
	Resume      *Resume           `gorm:"foreignKey:ResumeID;constraint:OnDelete:CASCADE" json:"resume,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
