package usecase

import (
	"strings"

	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/model"
	"github.com/jobboard/backend/internal/repository"
	"github.com/jobboard/backend/internal/util"
)

type UserUsecase struct {
	userRepo *repository.UserRepository
}

func NewUserUsecase(userRepo *repository.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

func (uc *UserUsecase) UpdateProfile(user *model.User, req dto.UpdateProfileRequest) (*model.User, error) {
	fields := util.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}
	if user.IsRecruiter() && strings.TrimSpace(req.CompanyName) == "" {
		fields["company_name"] = "The company_name field is required"
	}
	if len(fields) > 0 {
		return nil, util.NewValidationError("Validation failed", fields)
	}

	user.Name = req.Name
	// company fields only ever belong to recruiters
	if user.IsRecruiter() {
		user.CompanyName = req.CompanyName
		user.CompanyDescription = req.CompanyDescription
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, util.NewError(util.CodeInternal, "Profile update failed", err)
	}
	return user, nil
}

func (uc *UserUsecase) ListPublicUsers() ([]dto.PublicUserDTO, error) {
	users, err := uc.userRepo.ListNewestFirst()
	if err != nil {
		return nil, util.NewError(util.CodeInternal, "Failed to retrieve users", err)
	}
	summaries := make([]dto.PublicUserDTO, 0, len(users))
	for i := range users {
		summaries = append(summaries, dto.NewPublicUserDTO(&users[i]))
	}
	return summaries, nil
}
