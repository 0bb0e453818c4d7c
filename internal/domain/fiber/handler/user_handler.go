package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/middleware"
	"github.com/jobboard/backend/internal/usecase"
	"github.com/jobboard/backend/internal/util"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Get("/users", h.ListPublic)
	r.Put("/user/profile", authRequired, h.UpdateProfile)
}

func (h *UserHandler) ListPublic(c *fiber.Ctx) error {
	users, err := h.uc.ListPublicUsers()
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Users retrieved successfully",
		Data:    fiber.Map{"users": users},
	})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	user, err := h.uc.UpdateProfile(middleware.CurrentUser(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Profile updated successfully",
		Data:    fiber.Map{"user": dto.NewUserDTO(user)},
	})
}
