package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/model"
	"github.com/jobboard/backend/internal/repository"
	"github.com/jobboard/backend/internal/service"
	"github.com/jobboard/backend/internal/util"
	"gorm.io/gorm"
)

type ResumeUsecase struct {
	resumeRepo *repository.ResumeRepository
	storage    service.StorageServiceInterface
}

func NewResumeUsecase(resumeRepo *repository.ResumeRepository, storage service.StorageServiceInterface) *ResumeUsecase {
	return &ResumeUsecase{resumeRepo: resumeRepo, storage: storage}
}

func (uc *ResumeUsecase) List(caller *model.User) ([]model.Resume, error) {
	resumes, err := uc.resumeRepo.FindByOwner(caller.ID)
	if err != nil {
		return nil, util.NewError(util.CodeInternal, "Failed to retrieve resumes", err)
	}
	return resumes, nil
}

// Create persists the record for an already-stored file. The
// default-flag exclusivity runs inside the repository transaction.
func (uc *ResumeUsecase) Create(caller *model.User, req dto.CreateResumeRequest, filePath string) (*model.Resume, error) {
	if fields := util.ValidateStruct(req); fields != nil {
		return nil, util.NewValidationError("Validation failed", fields)
	}

	resume := &model.Resume{
		JobSeekerID: caller.ID,
		Title:       req.Title,
		FilePath:    filePath,
		IsDefault:   req.IsDefault,
		UploadedAt:  time.Now(),
	}
	if err := uc.resumeRepo.Create(resume); err != nil {
		return nil, util.NewError(util.CodeInternal, "Failed to create resume", err)
	}
	return resume, nil
}

func (uc *ResumeUsecase) Get(caller *model.User, id uuid.UUID) (*model.Resume, error) {
	resume, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	if resume.JobSeekerID != caller.ID && !caller.IsAdmin() {
		return nil, util.NewError(util.CodeForbidden, "Unauthorized", nil)
	}
	return resume, nil
}

func (uc *ResumeUsecase) Update(caller *model.User, id uuid.UUID, req dto.UpdateResumeRequest) (*model.Resume, error) {
	resume, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	if resume.JobSeekerID != caller.ID {
		return nil, util.NewError(util.CodeForbidden, "Unauthorized", nil)
	}
	if fields := util.ValidateStruct(req); fields != nil {
		return nil, util.NewValidationError("Validation failed", fields)
	}

	if req.Title != nil {
		resume.Title = *req.Title
	}
	if req.IsDefault != nil {
		resume.IsDefault = *req.IsDefault
	}

	if err := uc.resumeRepo.Update(resume); err != nil {
		return nil, util.NewError(util.CodeInternal, "Failed to update resume", err)
	}
	return resume, nil
}

// Delete removes the blob before the record; a blob that is already
// gone is not an error.
func (uc *ResumeUsecase) Delete(caller *model.User, id uuid.UUID) error {
	resume, err := uc.find(id)
	if err != nil {
		return err
	}
	if resume.JobSeekerID != caller.ID {
		return util.NewError(util.CodeForbidden, "Unauthorized", nil)
	}

	if err := uc.storage.Delete(resume.FilePath); err != nil && !util.Is(err, util.CodeNotFound) {
		return err
	}
	if err := uc.resumeRepo.Delete(resume); err != nil {
		return util.NewError(util.CodeInternal, "Failed to delete resume", err)
	}
	return nil
}

// Download resolves the stored file for the owner, an admin, or a
// recruiter who received this resume through an application against
// one of their jobs. A missing blob is a 404, never a 403.
func (uc *ResumeUsecase) Download(caller *model.User, id uuid.UUID) (string, error) {
	resume, err := uc.find(id)
	if err != nil {
		return "", err
	}

	allowed := resume.JobSeekerID == caller.ID || caller.IsAdmin()
	if !allowed && caller.IsRecruiter() {
		allowed, err = uc.resumeRepo.SubmittedToRecruiter(resume.ID, caller.ID)
		if err != nil {
			return "", util.NewError(util.CodeInternal, "Failed to retrieve resume", err)
		}
	}
	if !allowed {
		return "", util.NewError(util.CodeForbidden, "Unauthorized", nil)
	}

	return uc.storage.Resolve(resume.FilePath)
}

func (uc *ResumeUsecase) find(id uuid.UUID) (*model.Resume, error) {
	resume, err := uc.resumeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewError(util.CodeNotFound, "Resume not found", nil)
		}
		return nil, util.NewError(util.CodeInternal, "Failed to retrieve resume", err)
	}
	return resume, nil
}
