package usecase

import (
	"errors"
	"time"

	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/model"
	"github.com/jobboard/backend/internal/repository"
	"github.com/jobboard/backend/internal/service"
	"github.com/jobboard/backend/internal/util"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	userRepo *repository.UserRepository
	tokens   service.TokenServiceInterface
}

func NewAuthUsecase(userRepo *repository.UserRepository, tokens service.TokenServiceInterface) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, tokens: tokens}
}

func (uc *AuthUsecase) Register(req dto.RegisterRequest) (*model.User, string, error) {
	if fields := util.ValidateStruct(req); fields != nil {
		return nil, "", util.NewValidationError("Validation failed", fields)
	}

	if _, err := uc.userRepo.FindByEmail(req.Email); err == nil {
		return nil, "", util.NewValidationError("Validation failed", map[string]string{
			"email": "The email has already been taken",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", util.NewError(util.CodeInternal, "Registration failed", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", util.NewError(util.CodeInternal, "Registration failed", err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
	}
	if req.Role == model.RoleRecruiter {
		user.CompanyName = req.CompanyName
		user.CompanyDescription = req.CompanyDescription
	}

	if err := uc.userRepo.Create(user); err != nil {
		// unique index backstop for concurrent registrations
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", util.NewValidationError("Validation failed", map[string]string{
				"email": "The email has already been taken",
			})
		}
		return nil, "", util.NewError(util.CodeInternal, "Registration failed", err)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login deliberately reports the same generic failure for an unknown
// email and a wrong password.
func (uc *AuthUsecase) Login(req dto.LoginRequest, ip string) (*model.User, string, error) {
	if fields := util.ValidateStruct(req); fields != nil {
		return nil, "", util.NewValidationError("Validation failed", fields)
	}

	user, err := uc.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", util.NewError(util.CodeAuth, "Invalid credentials", nil)
		}
		return nil, "", util.NewError(util.CodeInternal, "Login failed", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, "", util.NewError(util.CodeAuth, "Invalid credentials", nil)
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.LastLoginIP = ip
	if err := uc.userRepo.Update(user); err != nil {
		return nil, "", util.NewError(util.CodeInternal, "Login failed", err)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *AuthUsecase) Logout(token string) {
	uc.tokens.Invalidate(token)
}

func (uc *AuthUsecase) Refresh(user *model.User) (string, error) {
	return uc.tokens.Issue(user.ID)
}
