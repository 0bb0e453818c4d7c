package util

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ErrorCode string

const (
	CodeValidation ErrorCode = "validation"
	CodeBusiness   ErrorCode = "business_rule"
	CodeAuth       ErrorCode = "authentication"
	CodeForbidden  ErrorCode = "forbidden"
	CodeNotFound   ErrorCode = "not_found"
	CodeInternal   ErrorCode = "internal"
)

// AppError is the error type returned by usecases. Handlers map it to
// the HTTP response through HandleError.
type AppError struct {
	Code    ErrorCode
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewValidationError(message string, fields map[string]string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Fields: fields}
}

// Is reports whether err is an AppError carrying the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return fiber.StatusUnprocessableEntity
	case CodeBusiness:
		return fiber.StatusBadRequest
	case CodeAuth:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}
