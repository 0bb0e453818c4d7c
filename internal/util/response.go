package util

import (
	"errors"
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/jobboard/backend/internal/config"
	"github.com/jobboard/backend/internal/response"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type OrderedSuccessResponse struct {
	Status     string               `json:"status"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	Errors     map[string]string
	DevMessage string
	Trace      string
}

type OrderedErrorResponse struct {
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
	DevMessage string            `json:"dev_message,omitempty"`
	Trace      string            `json:"trace,omitempty"`
}

// SuccessResponse mengirim response JSON standar untuk sukses
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	resp := OrderedSuccessResponse{
		Status:     "success",
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
		Meta:       params.Meta,
	}
	return c.Status(code).JSON(resp)
}

// ErrorResponse mengirim response JSON standar untuk error
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	resp := OrderedErrorResponse{
		Status:  "error",
		Message: params.Message,
		Errors:  params.Errors,
	}
	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			resp.DevMessage = errs[0].Error()
			resp.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			resp.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			resp.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if errorCode == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(resp)
}

// HandleError maps a usecase error onto the wire. Unexpected errors
// become a generic 500 with the reason logged server-side only.
func HandleError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Code == CodeInternal {
			log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
			return ErrorResponse(c, ErrorResponseFormat{
				Code:    appErr.HTTPStatus(),
				Message: appErr.Message,
			}, appErr.Err)
		}
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    appErr.HTTPStatus(),
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
	}
	log.Printf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return ErrorResponse(c, ErrorResponseFormat{
		Code:    fiber.StatusInternalServerError,
		Message: "Internal Server Error",
	}, err)
}
