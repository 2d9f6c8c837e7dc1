package reviewRoutes

import (
	reviewController "geodir/controllers/review"
	"geodir/middleware"
	reviewValidator "geodir/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	app.Get("/location/:id/reviews", reviewController.ReviewsPage)
	app.Post("/review/add/:locId", middleware.PageAuthMiddleware, reviewValidator.AddReview(), reviewController.AddReview)
	app.Post("/review/delete/:id", middleware.PageAuthMiddleware, reviewController.DeleteReview)
}
