package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobboard/backend/internal/model"
)

// fiber gives params as raw strings; a malformed id is treated the
// same as an unknown one.
func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func canPostJobs(caps model.Capabilities) bool {
	return caps.CanPostJobs
}

func canApply(caps model.Capabilities) bool {
	return caps.CanApply
}
