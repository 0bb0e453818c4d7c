package repository

import (
	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/model"
	"gorm.io/gorm"
)

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db}
}

// Create inserts the resume; when it is marked default, every other
// default owned by the same job seeker is cleared in the same
// transaction, keeping the at-most-one-default invariant.
func (r *ResumeRepository) Create(resume *model.Resume) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if resume.IsDefault {
			err := tx.Model(&model.Resume{}).
				Where("job_seeker_id = ? AND is_default = ?", resume.JobSeekerID, true).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(resume).Error
	})
}

func (r *ResumeRepository) Update(resume *model.Resume) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if resume.IsDefault {
			err := tx.Model(&model.Resume{}).
				Where("job_seeker_id = ? AND is_default = ? AND id <> ?", resume.JobSeekerID, true, resume.ID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Save(resume).Error
	})
}

func (r *ResumeRepository) FindByID(id uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	err := r.db.First(&resume, "id = ?", id).Error
	return &resume, err
}

func (r *ResumeRepository) FindByOwner(ownerID uuid.UUID) ([]model.Resume, error) {
	var resumes []model.Resume
	err := r.db.Where("job_seeker_id = ?", ownerID).Order("uploaded_at DESC").Find(&resumes).Error
	return resumes, err
}

// Delete removes the resume and its applications in one transaction.
func (r *ResumeRepository) Delete(resume *model.Resume) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resume_id = ?", resume.ID).Delete(&model.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(resume).Error
	})
}

// SubmittedToRecruiter reports whether the resume backs an application
// against any job owned by the given recruiter.
func (r *ResumeRepository) SubmittedToRecruiter(resumeID, recruiterID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.resume_id = ? AND jobs.recruiter_id = ?", resumeID, recruiterID).
		Count(&count).Error
	return count > 0, err
}
