package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobboard/backend/internal/dto"
	"github.com/jobboard/backend/internal/middleware"
	"github.com/jobboard/backend/internal/usecase"
	"github.com/jobboard/backend/internal/util"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, authRequired fiber.Handler) {
	seeker := middleware.RequireCapability(canApply)

	r.Post("/jobs/:id/apply", authRequired, seeker, h.ApplyToJob)

	apps := r.Group("/applications", authRequired)
	apps.Get("/", h.List)
	apps.Post("/", seeker, h.Apply)
	apps.Get("/:id", h.Show)
	apps.Put("/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	return h.apply(c, req)
}

// ApplyToJob is the job-scoped variant of Apply; the target job comes
// from the path instead of the body.
func (h *ApplicationHandler) ApplyToJob(c *fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Job not found",
		})
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	req.JobID = jobID
	return h.apply(c, req)
}

func (h *ApplicationHandler) apply(c *fiber.Ctx, req dto.ApplyRequest) error {
	app, err := h.uc.Apply(middleware.CurrentUser(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted successfully",
		Data:    app,
	})
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	apps, pagination, err := h.uc.List(middleware.CurrentUser(c), c.QueryInt("page", 1), c.QueryInt("page_size", 10))
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Applications retrieved successfully",
		Data:       apps,
		Pagination: pagination,
	})
}

func (h *ApplicationHandler) Show(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Application not found",
		})
	}

	app, err := h.uc.Get(middleware.CurrentUser(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Application retrieved successfully",
		Data:    app,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Application not found",
		})
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	app, err := h.uc.UpdateStatus(middleware.CurrentUser(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Application status updated successfully",
		Data:    app,
	})
}
