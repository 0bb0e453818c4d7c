package usecase_test

import (
	"testing"

	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/model"
	"github.com/jobboard/backend/internal/repository"
	"github.com/jobboard/backend/internal/usecase"
	"github.com/jobboard/backend/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	db := setupDB(t)
	uc := usecase.NewUserUsecase(repository.NewUserRepository(db))

	seeker := seedUser(t, db, model.RoleJobSeeker, "seeker@example.com")
	recruiter := seedUser(t, db, model.RoleRecruiter, "recruiter@example.com")

	updated, err := uc.UpdateProfile(seeker, dto.UpdateProfileRequest{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)

	// company fields on a job seeker are ignored, not stored
	updated, err = uc.UpdateProfile(seeker, dto.UpdateProfileRequest{Name: "New Name", CompanyName: "Sneaky Inc"})
	require.NoError(t, err)
	assert.Empty(t, updated.CompanyName)

	_, err = uc.UpdateProfile(seeker, dto.UpdateProfileRequest{Name: ""})
	require.Error(t, err)
	assert.True(t, util.Is(err, util.CodeValidation))

	// recruiters cannot drop their company name
	_, err = uc.UpdateProfile(recruiter, dto.UpdateProfileRequest{Name: "Recruiter"})
	require.Error(t, err)
	assert.True(t, util.Is(err, util.CodeValidation))

	updated, err = uc.UpdateProfile(recruiter, dto.UpdateProfileRequest{
		Name:               "Recruiter",
		CompanyName:        "Initech",
		CompanyDescription: "We make TPS reports",
	})
	require.NoError(t, err)
	assert.Equal(t, "Initech", updated.CompanyName)
	assert.Equal(t, "We make TPS reports", updated.CompanyDescription)
}

func TestListPublicUsersShape(t *testing.T) {
	db := setupDB(t)
	uc := usecase.NewUserUsecase(repository.NewUserRepository(db))

	seedUser(t, db, model.RoleJobSeeker, "a@example.com")
	seedUser(t, db, model.RoleRecruiter, "b@example.com")
	seedUser(t, db, model.RoleAdmin, "c@example.com")

	users, err := uc.ListPublicUsers()
	require.NoError(t, err)
	assert.Len(t, users, 3)
	for _, u := range users {
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Email)
	}
}
