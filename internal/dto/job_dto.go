package dto

import (
	"time"

	"github.com/jobboard/backend/internal/model"
)

type CreateJobRequest struct {
	Title               string        `json:"title" validate:"required,max=255"`
	Description         string        `json:"description" validate:"required"`
	Requirements        string        `json:"requirements" validate:"required"`
	Location            string        `json:"location" validate:"required,max=255"`
	Type                model.JobType `json:"type" validate:"required,oneof=full-time part-time contract internship"`
	SalaryRange         string        `json:"salary_range" validate:"required,max=255"`
	Category            string        `json:"category" validate:"required,max=255"`
	ApplicationDeadline time.Time     `json:"application_deadline" validate:"required"`
}

type UpdateJobRequest struct {
	Title               *string          `json:"title" validate:"omitempty,max=255"`
	Description         *string          `json:"description"`
	Requirements        *string          `json:"requirements"`
	Location            *string          `json:"location" validate:"omitempty,max=255"`
	Type                *model.JobType   `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	SalaryRange         *string          `json:"salary_range" validate:"omitempty,max=255"`
	Category            *string          `json:"category" validate:"omitempty,max=255"`
	Status              *model.JobStatus `json:"status" validate:"omitempty,oneof=active closed draft"`
	ApplicationDeadline *time.Time       `json:"application_deadline"`
}

// JobFilter carries the listing query params; zero values mean the
// filter is not applied.
type JobFilter struct {
	Category string
	Location string
	Type     string
	Company  string
	Page     int
	PageSize int
}
