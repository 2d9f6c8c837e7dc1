package favoriteRoutes

import (
	favoriteController "geodir/controllers/favorite"
	"geodir/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupFavoriteRoutes(app *fiber.App) {
	app.Post("/favorite/:locId", middleware.JWTMiddleware, favoriteController.AddFavorite)
	app.Delete("/favorite/:locId", middleware.JWTMiddleware, favoriteController.RemoveFavorite)
	app.Get("/api/favorites", middleware.JWTMiddleware, favoriteController.ApiFavorites)
}
