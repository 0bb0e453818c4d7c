package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resume references an uploaded file by its opaque storage path. At
// most one resume per job seeker may have IsDefault set; the registry
// clears competing flags inside the same transaction as the write.
type Resume struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobSeekerID uuid.UUID `gorm:"type:uuid;not null;index" json:"job_seeker_id"`
	JobSeeker   *User     `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"job_seeker,omitempty"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	FilePath    string    `gorm:"type:varchar(255);not null" json:"file_path"`
	IsDefault   bool      `gorm:"default:false" json:"is_default"`
	UploadedAt  time.Time `json:"uploaded_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
