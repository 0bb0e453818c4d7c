package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobboard/backend/internal/model"
	"github.com/jobboard/backend/internal/repository"
	"github.com/jobboard/backend/internal/service"
	"github.com/jobboard/backend/internal/util"
)

const (
	userLocalKey  = "current_user"
	tokenLocalKey = "bearer_token"
)

// Auth validates the bearer token and resolves the caller once; the
// user travels to handlers through locals, never through globals.
func Auth(tokens service.TokenServiceInterface, users *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Missing Authorization header",
			})
		}
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid Authorization header",
			})
		}

		userID, err := tokens.Validate(tokenStr)
		if err != nil {
			return util.HandleError(c, err)
		}
		user, err := users.FindByID(userID)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		c.Locals(userLocalKey, user)
		c.Locals(tokenLocalKey, tokenStr)
		return c.Next()
	}
}

func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(userLocalKey).(*model.User)
	return user
}

func BearerToken(c *fiber.Ctx) string {
	token, _ := c.Locals(tokenLocalKey).(string)
	return token
}

// RequireCapability gates a route on the caller's capability set,
// resolved from the role exactly once at authentication time.
func RequireCapability(allowed func(model.Capabilities) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !allowed(user.Role.Capabilities()) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "Unauthorized",
			})
		}
		return c.Next()
	}
}
