package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/model"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Job{}, &model.Resume{}, &model.Application{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role model.Role, email string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if role == model.RoleRecruiter {
		user.CompanyName = "Acme Corp"
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedJob(t *testing.T, db *gorm.DB, recruiter *model.User, status model.JobStatus, deadline time.Time) *model.Job {
	t.Helper()
	job := &model.Job{
		Title:               "Backend Engineer",
		Description:         "Build and maintain APIs",
		Requirements:        "3+ years of Go",
		Location:            "Jakarta",
		Type:                model.JobTypeFullTime,
		SalaryRange:         "10-15jt",
		Category:            "Engineering",
		Status:              status,
		RecruiterID:         recruiter.ID,
		CompanyName:         recruiter.CompanyName,
		ApplicationDeadline: deadline,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func seedResume(t *testing.T, db *gorm.DB, seeker *model.User, title string, isDefault bool) *model.Resume {
	t.Helper()
	resume := &model.Resume{
		JobSeekerID: seeker.ID,
		Title:       title,
		FilePath:    "resumes/" + uuid.NewString() + ".pdf",
		IsDefault:   isDefault,
		UploadedAt:  time.Now(),
	}
	require.NoError(t, db.Create(resume).Error)
	return resume
}

func seedApplication(t *testing.T, db *gorm.DB, job *model.Job, seeker *model.User, resume *model.Resume) *model.Application {
	t.Helper()
	app := &model.Application{
		JobID:       job.ID,
		JobSeekerID: seeker.ID,
		ResumeID:    resume.ID,
		Status:      model.ApplicationStatusPending,
	}
	require.NoError(t, db.Create(app).Error)
	return app
}

func countDefaults(t *testing.T, db *gorm.DB, seekerID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.Resume{}).
		Where("job_seeker_id = ? AND is_default = ?", seekerID, true).
		Count(&n).Error)
	return n
}
