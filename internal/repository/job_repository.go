package repository

import (
	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/model"
	"github.com/jobboard/backend/internal/response"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) FindByID(id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.Preload("Recruiter").First(&j, "id = ?", id).Error
	return &j, err
}

// Delete removes the job together with its applications in one
// transaction, so no orphaned application can survive the job.
func (r *JobRepository) Delete(job *model.Job) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&model.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(job).Error
	})
}

func (r *JobRepository) ListActive(filter dto.JobFilter) ([]model.Job, *response.Pagination, error) {
	page, pageSize, offset := paginate(filter.Page, filter.PageSize)

	query := r.db.Model(&model.Job{}).Where("status = ?", model.JobStatusActive)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Company != "" {
		query = query.Where("company_name LIKE ?", "%"+filter.Company+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var jobs []model.Job
	err := query.
		Preload("Recruiter").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, nil, err
	}
	return jobs, response.NewPagination(page, pageSize, total), nil
}
