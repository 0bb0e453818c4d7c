package handler

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/middleware"
	"github.com/jobboard/backend/internal/service"
	"github.com/jobboard/backend/internal/usecase"
	"github.com/jobboard/backend/internal/util"
)

const maxResumeSize = 5 * 1024 * 1024

type ResumeHandler struct {
	uc      *usecase.ResumeUsecase
	storage service.StorageServiceInterface
}

func NewResumeHandler(uc *usecase.ResumeUsecase, storage service.StorageServiceInterface) *ResumeHandler {
	return &ResumeHandler{uc: uc, storage: storage}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	seeker := middleware.RequireCapability(canApply)

	resumes := r.Group("/resumes", authRequired)
	resumes.Get("/", h.List)
	resumes.Post("/", seeker, h.Create)
	resumes.Get("/:id/download", h.Download)
	resumes.Get("/:id", h.Show)
	resumes.Put("/:id", seeker, h.Update)
	resumes.Delete("/:id", seeker, h.Delete)
}

func (h *ResumeHandler) List(c *fiber.Ctx) error {
	resumes, err := h.uc.List(middleware.CurrentUser(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resumes retrieved successfully",
		Data:    resumes,
	})
}

func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "Validation failed",
			Errors:  map[string]string{"resume": "The resume field is required"},
		}, err)
	}
	if file.Size > maxResumeSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "Validation failed",
			Errors:  map[string]string{"resume": fmt.Sprintf("The resume file may not be greater than %d kilobytes", maxResumeSize/1024)},
		})
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "Validation failed",
			Errors:  map[string]string{"resume": "The resume field must be a file of type: pdf"},
		})
	}

	isDefault, _ := strconv.ParseBool(c.FormValue("is_default"))
	req := dto.CreateResumeRequest{
		Title:     c.FormValue("title"),
		IsDefault: isDefault,
	}

	src, err := file.Open()
	if err != nil {
		return util.HandleError(c, util.NewError(util.CodeInternal, "cannot save resume file", err))
	}
	defer src.Close()

	path, err := h.storage.Store(src, "resumes", file.Filename)
	if err != nil {
		return util.HandleError(c, err)
	}

	resume, err := h.uc.Create(middleware.CurrentUser(c), req, path)
	if err != nil {
		// no record was created, remove the stored blob again
		_ = h.storage.Delete(path)
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Resume uploaded successfully",
		Data:    resume,
	})
}

func (h *ResumeHandler) Show(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Resume not found",
		})
	}

	resume, err := h.uc.Get(middleware.CurrentUser(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume retrieved successfully",
		Data:    resume,
	})
}

func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Resume not found",
		})
	}

	var req dto.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	resume, err := h.uc.Update(middleware.CurrentUser(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume updated successfully",
		Data:    resume,
	})
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Resume not found",
		})
	}

	if err := h.uc.Delete(middleware.CurrentUser(c), id); err != nil {
		return util.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ResumeHandler) Download(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Resume not found",
		})
	}

	path, err := h.uc.Download(middleware.CurrentUser(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.Download(path)
}
