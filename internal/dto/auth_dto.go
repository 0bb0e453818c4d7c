package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/model"
)

type RegisterRequest struct {
	Name                 string     `json:"name" validate:"required,max=255"`
	Email                string     `json:"email" validate:"required,email,max=255"`
	Password             string     `json:"password" validate:"required,min=8"`
	PasswordConfirmation string     `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 model.Role `json:"role" validate:"required,oneof=job_seeker recruiter"`
	CompanyName          string     `json:"company_name" validate:"required_if=Role recruiter,max=255"`
	CompanyDescription   string     `json:"company_description"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Role               model.Role `json:"role"`
	CompanyName        string     `json:"company_name,omitempty"`
	CompanyDescription string     `json:"company_description,omitempty"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP        string     `json:"last_login_ip,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		CompanyName:        u.CompanyName,
		CompanyDescription: u.CompanyDescription,
		LastLoginAt:        u.LastLoginAt,
		LastLoginIP:        u.LastLoginIP,
		CreatedAt:          u.CreatedAt,
	}
}

type AuthData struct {
	User      UserDTO `json:"user"`
	Token     string  `json:"token"`
	TokenType string  `json:"token_type"`
}
