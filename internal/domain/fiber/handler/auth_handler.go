package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/middleware"
	"github.com/jobboard/backend/internal/usecase"
	"github.com/jobboard/backend/internal/util"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	r.Post("/register", middleware.RateLimiter(10, 1*time.Minute), h.Register)
	r.Post("/login", middleware.RateLimiter(10, 1*time.Minute), h.Login)
	r.Post("/logout", authRequired, h.Logout)
	r.Post("/refresh", authRequired, h.Refresh)
	r.Get("/user", authRequired, h.Me)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	user, token, err := h.uc.Register(req)
	if err != nil {
		return util.HandleError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "User created successfully",
		Data: dto.AuthData{
			User:      dto.NewUserDTO(user),
			Token:     token,
			TokenType: "bearer",
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	user, token, err := h.uc.Login(req, c.IP())
	if err != nil {
		return util.HandleError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Login successful",
		Data: dto.AuthData{
			User:      dto.NewUserDTO(user),
			Token:     token,
			TokenType: "bearer",
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(middleware.BearerToken(c))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Successfully logged out",
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	token, err := h.uc.Refresh(user)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Token refreshed successfully",
		Data: dto.AuthData{
			User:      dto.NewUserDTO(user),
			Token:     token,
			TokenType: "bearer",
		},
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get user",
		Data:    fiber.Map{"user": dto.NewUserDTO(user)},
	})
}
