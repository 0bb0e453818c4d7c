package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/model"
)

type UpdateProfileRequest struct {
	Name               string `json:"name" validate:"required,max=255"`
	CompanyName        string `json:"company_name" validate:"max=255"`
	CompanyDescription string `json:"company_description"`
}

// PublicUserDTO is the summary exposed on the unauthenticated user
// listing; no role or company details.
type PublicUserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP string     `json:"last_login_ip,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewPublicUserDTO(u *model.User) PublicUserDTO {
	return PublicUserDTO{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		LastLoginAt: u.LastLoginAt,
		LastLoginIP: u.LastLoginIP,
		CreatedAt:   u.CreatedAt,
	}
}
