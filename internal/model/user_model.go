package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Capabilities is derived once from the role when the request is
// authenticated; handlers and usecases check these instead of
// re-comparing role strings everywhere.
type Capabilities struct {
	CanPostJobs bool
	CanApply    bool
	CanModerate bool
}

func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

func (r Role) Capabilities() Capabilities {
	switch r {
	case RoleRecruiter:
		return Capabilities{CanPostJobs: true}
	case RoleAdmin:
		return Capabilities{CanPostJobs: true, CanModerate: true}
	case RoleJobSeeker:
		return Capabilities{CanApply: true}
	}
	return Capabilities{}
}

type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string     `gorm:"type:varchar(255);not null" json:"name"`
	Email              string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password           string     `gorm:"type:varchar(255);not null" json:"-"`
	Role               Role       `gorm:"type:varchar(20);default:'job_seeker'" json:"role"`
	CompanyName        string     `gorm:"type:varchar(255)" json:"company_name,omitempty"`
	CompanyDescription string     `gorm:"type:text" json:"company_description,omitempty"`
	LastLoginAt        *time.Time `json:"last_login_at"`
	LastLoginIP        string     `gorm:"type:varchar(45)" json:"last_login_ip,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsJobSeeker() bool {
	return u.Role == RoleJobSeeker
}

func (u *User) IsRecruiter() bool {
	return u.Role == RoleRecruiter
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
