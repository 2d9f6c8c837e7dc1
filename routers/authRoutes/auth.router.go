package authRoutes

import (
	authController "geodir/controllers/auth"
	"geodir/middleware"
	authValidator "geodir/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/register", authValidator.Register(), authController.Register)
	app.Post("/login", authValidator.Login(), authController.Login)
	app.Get("/logout", middleware.PageAuthMiddleware, authController.Logout)
	app.Get("/profile", middleware.PageAuthMiddleware, authController.Profile)
}
