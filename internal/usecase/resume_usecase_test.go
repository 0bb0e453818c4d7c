package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/model"
	"github.com/jobboard/backend/internal/repository"
	"github.com/jobboard/backend/internal/service"
	"github.com/jobboard/backend/internal/usecase"
	"github.com/jobboard/backend/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newResumeUsecase(t *testing.T) (*usecase.ResumeUsecase, *gorm.DB, *service.StorageService) {
	t.Helper()
	db := setupDB(t)
	storage := service.NewStorageServiceAt(t.TempDir())
	uc := usecase.NewResumeUsecase(repository.NewResumeRepository(db), storage)
	return uc, db, storage
}

func TestCreateResumeDefaultExclusivity(t *testing.T) {
	uc, db, _ := newResumeUsecase(t)
	seeker := seedUser(t, db, model.RoleJobSeeker, "seeker@example.com")

	r1, err := uc.Create(seeker, dto.CreateResumeRequest{Title: "R1", IsDefault: true}, "resumes/r1.pdf")
	require.NoError(t, err)
	assert.True(t, r1.IsDefault)

	r2, err := uc.Create(seeker, dto.CreateResumeRequest{Title: "R2", IsDefault: true}, "resumes/r2.pdf")
	require.NoError(t, err)
	assert.True(t, r2.IsDefault)

	// uploading R2 as default must clear R1
	var stored model.Resume
	require.NoError(t, db.First(&stored, "id = ?", r1.ID).Error)
	assert.False(t, stored.IsDefault)

	assert.EqualValues(t, 1, countDefaults(t, db, seeker.ID))
}

func TestCreateResumeDefaultScopedToOwner(t *testing.T) {
	uc, db, _ := newResumeUsecase(t)
	alice := seedUser(t, db, model.RoleJobSeeker, "alice@example.com")
	bob := seedUser(t, db, model.RoleJobSeeker, "bob@example.com")

	_, err := uc.Create(alice, dto.CreateResumeRequest{Title: "Alice CV", IsDefault: true}, "resumes/a.pdf")
	require.NoError(t, err)
	_, err = uc.Create(bob, dto.CreateResumeRequest{Title: "Bob CV", IsDefault: true}, "resumes/b.pdf")
	require.NoError(t, err)

	// one default each, neither cleared by the other
	assert.EqualValues(t, 1, countDefaults(t, db, alice.ID))
	assert.EqualValues(t, 1, countDefaults(t, db, bob.ID))
}

func TestUpdateResumeDefaultExclusivity(t *testing.T) {
	uc, db, _ := newResumeUsecase(t)
	seeker := seedUser(t, db, model.RoleJobSeeker, "seeker@example.com")
	r1 := seedResume(t, db, seeker, "R1", true)
	r2 := seedResume(t, db, seeker, "R2", false)

	setDefault := true
	updated, err := uc.Update(seeker, r2.ID, dto.UpdateResumeRequest{IsDefault: &setDefault})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	var stored model.Resume
	require.NoError(t, db.First(&stored, "id = ?", r1.ID).Error)
	assert.False(t, stored.IsDefault)
	assert.EqualValues(t, 1, countDefaults(t, db, seeker.ID))

	// setting default again on the same record keeps it set
	updated, err = uc.Update(seeker, r2.ID, dto.UpdateResumeRequest{IsDefault: &setDefault})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.EqualValues(t, 1, countDefaults(t, db, seeker.ID))
}

func TestUpdateResumeOwnerOnly(t *testing.T) {
	uc, db, _ := newResumeUsecase(t)
	owner := seedUser(t, db, model.RoleJobSeeker, "owner@example.com")
	other := seedUser(t, db, model.RoleJobSeeker, "other@example.com")
	resume := seedResume(t, db, owner, "CV", false)

	title := "Stolen"
	_, err := uc.Update(other, resume.ID, dto.UpdateResumeRequest{Title: &title})
	require.Error(t, err)
	assert.True(t, util.Is(err, util.CodeForbidden))
}

func TestListResumesOwnedOnly(t *testing.T) {
	uc, db, _ := newResumeUsecase(t)
	alice := seedUser(t, db, model.RoleJobSeeker, "alice@example.com")
	bob := seedUser(t, db, model.RoleJobSeeker, "bob@example.com")
	seedResume(t, db, alice, "A1", false)
	seedResume(t, db, alice, "A2", false)
	seedResume(t, db, bob, "B1", false)

	resumes, err := uc.List(alice)
	require.NoError(t, err)
	require.Len(t, resumes, 2)
	for _, r := range resumes {
		assert.Equal(t, alice.ID, r.JobSeekerID)
	}
}

func TestDeleteResumeToleratesMissingBlob(t *testing.T) {
	uc, db, _ := newResumeUsecase(t)
	seeker := seedUser(t, db, model.RoleJobSeeker, "seeker@example.com")
	// file path points at nothing on disk
	resume := seedResume(t, db, seeker, "CV", false)

	require.NoError(t, uc.Delete(seeker, resume.ID))

	var n int64
	require.NoError(t, db.Model(&model.Resume{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDeleteResumeRemovesBlobAndCascades(t *testing.T) {
	uc, db, storage := newResumeUsecase(t)
	seeker := seedUser(t, db, model.RoleJobSeeker, "seeker@example.com")
	recruiter := seedUser(t, db, model.RoleRecruiter, "recruiter@example.com")
	job := seedJob(t, db, recruiter, model.JobStatusActive, time.Now().Add(time.Hour))

	path, err := storage.Store(strings.NewReader("%PDF-1.4 test"), "resumes", "cv.pdf")
	require.NoError(t, err)
	resume := &model.Resume{JobSeekerID: seeker.ID, Title: "CV", FilePath: path, UploadedAt: time.Now()}
	require.NoError(t, db.Create(resume).Error)
	seedApplication(t, db, job, seeker, resume)

	require.NoError(t, uc.Delete(seeker, resume.ID))

	_, err = storage.Resolve(path)
	assert.True(t, util.Is(err, util.CodeNotFound), "blob must be gone")

	var apps int64
	require.NoError(t, db.Model(&model.Application{}).Count(&apps).Error)
	assert.Zero(t, apps, "applications backed by the resume must be gone")
}

func TestDownloadAuthorization(t *testing.T) {
	uc, db, storage := newResumeUsecase(t)
	owner := seedUser(t, db, model.RoleJobSeeker, "owner@example.com")
	stranger := seedUser(t, db, model.RoleJobSeeker, "stranger@example.com")
	admin := seedUser(t, db, model.RoleAdmin, "admin@example.com")
	hiring := seedUser(t, db, model.RoleRecruiter, "hiring@example.com")
	uninvolved := seedUser(t, db, model.RoleRecruiter, "uninvolved@example.com")

	path, err := storage.Store(strings.NewReader("%PDF-1.4 test"), "resumes", "cv.pdf")
	require.NoError(t, err)
	resume := &model.Resume{JobSeekerID: owner.ID, Title: "CV", FilePath: path, UploadedAt: time.Now()}
	require.NoError(t, db.Create(resume).Error)

	job := seedJob(t, db, hiring, model.JobStatusActive, time.Now().Add(time.Hour))
	seedApplication(t, db, job, owner, resume)

	tests := []struct {
		name     string
		caller   *model.User
		wantCode util.ErrorCode
	}{
		{"owner", owner, ""},
		{"admin", admin, ""},
		{"recruiter with application", hiring, ""},
		{"recruiter without application", uninvolved, util.CodeForbidden},
		{"other job seeker", stranger, util.CodeForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abs, err := uc.Download(tt.caller, resume.ID)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.NotEmpty(t, abs)
				return
			}
			require.Error(t, err)
			assert.True(t, util.Is(err, tt.wantCode))
		})
	}
}

func TestDownloadMissingBlobIsNotFound(t *testing.T) {
	uc, db, _ := newResumeUsecase(t)
	owner := seedUser(t, db, model.RoleJobSeeker, "owner@example.com")
	resume := seedResume(t, db, owner, "CV", false)

	_, err := uc.Download(owner, resume.ID)
	require.Error(t, err)
	// authorized caller with a missing file gets 404, not 403
	assert.True(t, util.Is(err, util.CodeNotFound))
}
