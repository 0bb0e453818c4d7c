package model_test

import (
	"testing"

	"github.com/jobboard/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRolePredicates(t *testing.T) {
	seeker := &model.User{Role: model.RoleJobSeeker}
	recruiter := &model.User{Role: model.RoleRecruiter}
	admin := &model.User{Role: model.RoleAdmin}

	assert.True(t, seeker.IsJobSeeker())
	assert.False(t, seeker.IsRecruiter())
	assert.False(t, seeker.IsAdmin())

	assert.True(t, recruiter.IsRecruiter())
	assert.False(t, recruiter.IsJobSeeker())

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsJobSeeker())
}

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role model.Role
		want model.Capabilities
	}{
		{model.RoleJobSeeker, model.Capabilities{CanApply: true}},
		{model.RoleRecruiter, model.Capabilities{CanPostJobs: true}},
		{model.RoleAdmin, model.Capabilities{CanPostJobs: true, CanModerate: true}},
		{model.Role("unknown"), model.Capabilities{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Capabilities())
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, model.RoleJobSeeker.Valid())
	assert.True(t, model.RoleRecruiter.Valid())
	assert.True(t, model.RoleAdmin.Valid())
	assert.False(t, model.Role("superuser").Valid())
}
