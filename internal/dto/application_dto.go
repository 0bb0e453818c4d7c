package dto

import (
	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/model"
)

type ApplyRequest struct {
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	ResumeID    uuid.UUID `json:"resume_id" validate:"required"`
	CoverLetter string    `json:"cover_letter"`
}

type UpdateApplicationStatusRequest struct {
	Status model.ApplicationStatus `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}
