package repository

import (
	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/model"
	"github.com/jobboard/backend/internal/response"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// Create relies on the (job_id, job_seeker_id) unique index; a
// concurrent duplicate surfaces as gorm.ErrDuplicatedKey.
func (r *ApplicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) FindByID(id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.
		Preload("Job").
		Preload("Job.Recruiter").
		Preload("JobSeeker").
		Preload("Resume").
		First(&app, "id = ?", id).Error
	return &app, err
}

func (r *ApplicationRepository) ExistsForJobAndSeeker(jobID, seekerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Application{}).
		Where("job_id = ? AND job_seeker_id = ?", jobID, seekerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepository) UpdateStatus(app *model.Application, status model.ApplicationStatus) error {
	return r.db.Model(app).Update("status", status).Error
}

func (r *ApplicationRepository) ListForJobSeeker(seekerID uuid.UUID, page, pageSize int) ([]model.Application, *response.Pagination, error) {
	query := r.db.Model(&model.Application{}).Where("job_seeker_id = ?", seekerID)
	return r.list(query, page, pageSize)
}

func (r *ApplicationRepository) ListForRecruiter(recruiterID uuid.UUID, page, pageSize int) ([]model.Application, *response.Pagination, error) {
	query := r.db.Model(&model.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID)
	return r.list(query, page, pageSize)
}

func (r *ApplicationRepository) ListAll(page, pageSize int) ([]model.Application, *response.Pagination, error) {
	return r.list(r.db.Model(&model.Application{}), page, pageSize)
}

func (r *ApplicationRepository) list(query *gorm.DB, page, pageSize int) ([]model.Application, *response.Pagination, error) {
	page, pageSize, offset := paginate(page, pageSize)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var apps []model.Application
	err := query.
		Preload("Job").
		Preload("JobSeeker").
		Preload("Resume").
		Order("applications.created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&apps).Error
	if err != nil {
		return nil, nil, err
	}
	return apps, response.NewPagination(page, pageSize, total), nil
}
