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

type ApplicationUsecase struct {
	appRepo    *repository.ApplicationRepository
	jobRepo    *repository.JobRepository
	resumeRepo *repository.ResumeRepository
}

func NewApplicationUsecase(appRepo *repository.ApplicationRepository, jobRepo *repository.JobRepository, resumeRepo *repository.ResumeRepository) *ApplicationUsecase {
	return &ApplicationUsecase{appRepo: appRepo, jobRepo: jobRepo, resumeRepo: resumeRepo}
}

// Apply runs the eligibility gates in order: job exists, job still
// active, deadline not passed, not applied before, resume belongs to
// the caller. The duplicate check is backed by the unique index, so a
// race between two identical requests cannot create two rows.
func (uc *ApplicationUsecase) Apply(caller *model.User, req dto.ApplyRequest) (*model.Application, error) {
	if fields := util.ValidateStruct(req); fields != nil {
		return nil, util.NewValidationError("Validation failed", fields)
	}

	job, err := uc.jobRepo.FindByID(req.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewError(util.CodeNotFound, "Job not found", nil)
		}
		return nil, util.NewError(util.CodeInternal, "Failed to retrieve job", err)
	}

	if job.Status != model.JobStatusActive {
		return nil, util.NewError(util.CodeBusiness, "This job is no longer accepting applications", nil)
	}
	if !time.Now().Before(job.ApplicationDeadline) {
		return nil, util.NewError(util.CodeBusiness, "Application deadline has passed", nil)
	}

	applied, err := uc.appRepo.ExistsForJobAndSeeker(job.ID, caller.ID)
	if err != nil {
		return nil, util.NewError(util.CodeInternal, "Failed to create application", err)
	}
	if applied {
		return nil, util.NewError(util.CodeBusiness, "You have already applied for this job", nil)
	}

	resume, err := uc.resumeRepo.FindByID(req.ResumeID)
	if err != nil || resume.JobSeekerID != caller.ID {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewError(util.CodeInternal, "Failed to retrieve resume", err)
		}
		return nil, util.NewValidationError("Validation failed", map[string]string{
			"resume_id": "The selected resume_id is invalid",
		})
	}

	app := &model.Application{
		JobID:       job.ID,
		JobSeekerID: caller.ID,
		ResumeID:    resume.ID,
		Status:      model.ApplicationStatusPending,
		CoverLetter: req.CoverLetter,
	}
	if err := uc.appRepo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.NewError(util.CodeBusiness, "You have already applied for this job", nil)
		}
		return nil, util.NewError(util.CodeInternal, "Failed to create application", err)
	}
	return app, nil
}

func (uc *ApplicationUsecase) List(caller *model.User, page, pageSize int) ([]model.Application, *response.Pagination, error) {
	var (
		apps       []model.Application
		pagination *response.Pagination
		err        error
	)
	switch {
	case caller.IsJobSeeker():
		apps, pagination, err = uc.appRepo.ListForJobSeeker(caller.ID, page, pageSize)
	case caller.IsRecruiter():
		apps, pagination, err = uc.appRepo.ListForRecruiter(caller.ID, page, pageSize)
	default:
		apps, pagination, err = uc.appRepo.ListAll(page, pageSize)
	}
	if err != nil {
		return nil, nil, util.NewError(util.CodeInternal, "Failed to retrieve applications", err)
	}
	return apps, pagination, nil
}

func (uc *ApplicationUsecase) Get(caller *model.User, id uuid.UUID) (*model.Application, error) {
	app, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && caller.ID != app.JobSeekerID && (app.Job == nil || caller.ID != app.Job.RecruiterID) {
		return nil, util.NewError(util.CodeForbidden, "Unauthorized", nil)
	}
	return app, nil
}

// UpdateStatus applies the status machine: pending may move to
// reviewed, accepted or rejected; reviewed to accepted or rejected;
// accepted and rejected are final.
func (uc *ApplicationUsecase) UpdateStatus(caller *model.User, id uuid.UUID, req dto.UpdateApplicationStatusRequest) (*model.Application, error) {
	if fields := util.ValidateStruct(req); fields != nil {
		return nil, util.NewValidationError("Validation failed", fields)
	}

	app, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && (app.Job == nil || caller.ID != app.Job.RecruiterID) {
		return nil, util.NewError(util.CodeForbidden, "Unauthorized", nil)
	}

	if !app.Status.CanTransitionTo(req.Status) {
		if app.Status.Terminal() {
			return nil, util.NewError(util.CodeBusiness, "Application status is final", nil)
		}
		return nil, util.NewError(util.CodeBusiness, "Invalid status transition", nil)
	}

	if err := uc.appRepo.UpdateStatus(app, req.Status); err != nil {
		return nil, util.NewError(util.CodeInternal, "Failed to update application", err)
	}
	return app, nil
}

func (uc *ApplicationUsecase) find(id uuid.UUID) (*model.Application, error) {
	app, err := uc.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewError(util.CodeNotFound, "Application not found", nil)
		}
		return nil, util.NewError(util.CodeInternal, "Failed to retrieve application", err)
	}
	return app, nil
}
