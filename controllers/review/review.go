package reviewController

import (
	"fmt"
	"log"

	"geodir/database"
	"geodir/middleware"
	"geodir/models"
	"geodir/utils"

	"github.com/gofiber/fiber/v2"
)

// AddReview stores a review for a location. Duplicate reviews by the same
// user are allowed; the rating range is enforced by the validator.
func AddReview(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating" form:"rating"`
		Comment string `json:"comment" form:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request data!", nil)
	}

	db := database.Database.Db

	var loc models.Location
	if err := db.First(&loc, c.Params("locId")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "Location not found!", nil)
	}

	review := models.Review{
		UserID:     userID,
		LocationID: loc.ID,
		Rating:     reqData.Rating,
		Comment:    reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error creating review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to add review!", nil)
	}

	return c.Redirect(fmt.Sprintf("/location/%d/reviews", loc.ID))
}

// ReviewsPage returns a location's reviews sorted by rating together with
// the average. sort=asc|desc, default desc.
func ReviewsPage(c *fiber.Ctx) error {
	db := database.Database.Db

	var loc models.Location
	if err := db.First(&loc, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "Location not found!", nil)
	}

	sort := c.Query("sort", "desc")
	order := "rating desc"
	if sort == "asc" {
		order = "rating asc"
	}

	var reviews []models.Review
	if err := db.Where("location_id = ?", loc.ID).Order(order).Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{
		"location":   loc,
		"reviews":    reviews,
		"avg_rating": utils.AverageRating(reviews),
		"sort":       sort,
		"flash":      middleware.TakeFlash(c),
	})
}

// DeleteReview removes a review when the caller is its author or an admin.
// This is a page flow: failures flash a notice and send the caller back
// to the reviews page with the review untouched.
func DeleteReview(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		middleware.SetFlash(c, "Please log in first")
		return c.Redirect("/login")
	}

	db := database.Database.Db

	var review models.Review
	if err := db.First(&review, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "Review not found!", nil)
	}

	back := fmt.Sprintf("/location/%d/reviews", review.LocationID)

	if !middleware.CanDeleteReview(user.Role, review.UserID == user.ID) {
		middleware.SetFlash(c, "You cannot delete this review")
		return c.Redirect(back)
	}

	if err := db.Unscoped().Delete(&review).Error; err != nil {
		log.Printf("Error deleting review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to delete review!", nil)
	}

	middleware.SetFlash(c, "Review deleted")
	return c.Redirect(back)
}
