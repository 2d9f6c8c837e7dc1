package locationRoutes

import (
	locationController "geodir/controllers/location"
	"geodir/middleware"
	locationValidator "geodir/validators/location"

	"github.com/gofiber/fiber/v2"
)

func SetupLocationRoutes(app *fiber.App) {
	app.Get("/", locationController.Index)
	app.Get("/api/locations", locationController.ApiLocations)
	app.Get("/location/:id", middleware.OptionalAuthMiddleware, locationController.LocationDetail)

	app.Post("/api/add_location", middleware.JWTMiddleware, locationValidator.AddLocation(), locationController.AddLocationApi)

	myGroup := app.Group("/api/my_location", middleware.JWTMiddleware)
	myGroup.Post("/add", locationValidator.AddMyLocation(), locationController.AddMyLocation)
	myGroup.Put("/edit/:id", locationController.EditMyLocation)
	myGroup.Delete("/delete/:id", locationController.DeleteMyLocation)

	app.Get("/my_locations", middleware.PageAuthMiddleware, locationController.MyLocations)
	app.Get("/edit_location/:id", middleware.PageAuthMiddleware, locationController.EditLocationPage)
	app.Post("/edit_location/:id", middleware.PageAuthMiddleware, locationController.EditLocationPage)
}
