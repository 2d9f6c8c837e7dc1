package adminValidator

import (
	"strings"

	"geodir/middleware"
	"geodir/models"

	"github.com/gofiber/fiber/v2"
)

// AddUser validator middleware
func AddUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username" form:"username"`
			Password string `json:"password" form:"password"`
			Role     string `json:"role" form:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Username)) < 3 {
			errors["username"] = "Username must be at least 3 characters long!"
		}
		if len(strings.TrimSpace(reqData.Password)) < 4 {
			errors["password"] = "Password must be at least 4 characters long!"
		}
		if !models.ValidRole(reqData.Role) {
			errors["role"] = "Role must be one of admin, moderator, owner, user!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}
