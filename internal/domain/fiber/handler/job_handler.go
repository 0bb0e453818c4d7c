package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/middleware"
	"github.com/jobboard/backend/internal/usecase"
	"github.com/jobboard/backend/internal/util"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	poster := middleware.RequireCapability(canPostJobs)

	jobs := r.Group("/jobs", authRequired)
	jobs.Get("/", h.List)
	jobs.Post("/", poster, h.Create)
	jobs.Get("/:id", h.Show)
	jobs.Put("/:id", poster, h.Update)
	jobs.Delete("/:id", poster, h.Delete)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	filter := dto.JobFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Company:  c.Query("company"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 10),
	}

	jobs, pagination, err := h.uc.List(filter)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Jobs retrieved successfully",
		Data:       jobs,
		Pagination: pagination,
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	job, err := h.uc.Create(middleware.CurrentUser(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job created successfully",
		Data:    job,
	})
}

func (h *JobHandler) Show(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Job not found",
		})
	}

	job, err := h.uc.Get(id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job retrieved successfully",
		Data:    job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Job not found",
		})
	}

	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	job, err := h.uc.Update(middleware.CurrentUser(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job updated successfully",
		Data:    job,
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Job not found",
		})
	}

	if err := h.uc.Delete(middleware.CurrentUser(c), id); err != nil {
		return util.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
