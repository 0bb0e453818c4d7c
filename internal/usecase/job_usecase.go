package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/model"
	"github.com/jobboard/backend/internal/repository"
	"github.com/jobboard/backend/internal/response"
	"github.com/jobboard/backend/internal/util"
	"gorm.io/gorm"
)

type JobUsecase struct {
	jobRepo *repository.JobRepository
}

func NewJobUsecase(jobRepo *repository.JobRepository) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo}
}

func (uc *JobUsecase) List(filter dto.JobFilter) ([]model.Job, *response.Pagination, error) {
	jobs, pagination, err := uc.jobRepo.ListActive(filter)
	if err != nil {
		return nil, nil, util.NewError(util.CodeInternal, "Failed to retrieve jobs", err)
	}
	return jobs, pagination, nil
}

func (uc *JobUsecase) Create(caller *model.User, req dto.CreateJobRequest) (*model.Job, error) {
	fields := util.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}
	if !req.ApplicationDeadline.IsZero() && !req.ApplicationDeadline.After(time.Now()) {
		fields["application_deadline"] = "The application_deadline field must be a date in the future"
	}
	if len(fields) > 0 {
		return nil, util.NewValidationError("Validation failed", fields)
	}

	job := &model.Job{
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		Type:                req.Type,
		SalaryRange:         req.SalaryRange,
		Category:            req.Category,
		Status:              model.JobStatusActive,
		RecruiterID:         caller.ID,
		CompanyName:         caller.CompanyName,
		ApplicationDeadline: req.ApplicationDeadline,
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, util.NewError(util.CodeInternal, "Failed to create job", err)
	}
	return job, nil
}

func (uc *JobUsecase) Get(id uuid.UUID) (*model.Job, error) {
	job, err := uc.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewError(util.CodeNotFound, "Job not found", nil)
		}
		return nil, util.NewError(util.CodeInternal, "Failed to retrieve job", err)
	}
	return job, nil
}

func (uc *JobUsecase) Update(caller *model.User, id uuid.UUID, req dto.UpdateJobRequest) (*model.Job, error) {
	job, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != caller.ID && !caller.IsAdmin() {
		return nil, util.NewError(util.CodeForbidden, "Unauthorized", nil)
	}

	fields := util.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}
	if req.ApplicationDeadline != nil && !req.ApplicationDeadline.After(time.Now()) {
		fields["application_deadline"] = "The application_deadline field must be a date in the future"
	}
	if len(fields) > 0 {
		return nil, util.NewValidationError("Validation failed", fields)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = *req.ApplicationDeadline
	}

	if err := uc.jobRepo.Update(job); err != nil {
		return nil, util.NewError(util.CodeInternal, "Failed to update job", err)
	}
	return job, nil
}

func (uc *JobUsecase) Delete(caller *model.User, id uuid.UUID) error {
	job, err := uc.Get(id)
	if err != nil {
		return err
	}
	if job.RecruiterID != caller.ID && !caller.IsAdmin() {
		return util.NewError(util.CodeForbidden, "Unauthorized", nil)
	}
	if err := uc.jobRepo.Delete(job); err != nil {
		return util.NewError(util.CodeInternal, "Failed to delete job", err)
	}
	return nil
}
