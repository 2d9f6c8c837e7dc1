package adminRoutes

import (
	adminController "geodir/controllers/admin"
	"geodir/middleware"
	adminValidator "geodir/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/", middleware.PageAuthMiddleware, adminController.AdminPanel)
	adminGroup.Post("/add_user", middleware.JWTMiddleware, adminValidator.AddUser(), adminController.AddUser)
	adminGroup.Post("/delete_user/:id", middleware.JWTMiddleware, adminController.DeleteUser)
	adminGroup.Post("/edit_user/:id", middleware.JWTMiddleware, adminController.EditUser)
	adminGroup.Post("/add_category", middleware.JWTMiddleware, adminController.AddCategory)
}
