package favoriteController

import (
	"log"

	locationController "geodir/controllers/location"
	"geodir/database"
	"geodir/middleware"
	"geodir/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddFavorite bookmarks a location for the caller. A second add for the
// same pair answers 400; the unique index backs up the pre-check, so two
// concurrent adds cannot both succeed.
func AddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var loc models.Location
	if err := database.Database.Db.First(&loc, c.Params("locId")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "Location not found!", nil)
	}

	fav := models.Favorite{UserID: userID, LocationID: loc.ID}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var existing models.Favorite
		if err := tx.Where("user_id = ? AND location_id = ?", userID, loc.ID).First(&existing).Error; err == nil {
			return fiber.ErrConflict
		}
		return tx.Create(&fav).Error
	})
	if err == fiber.ErrConflict || database.IsUniqueViolation(err) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Already in favorites!", nil)
	}
	if err != nil {
		log.Printf("Error creating favorite: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to add favorite!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{"action": "added"})
}

// RemoveFavorite deletes the caller's bookmark; 404 when there is none.
func RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var fav models.Favorite
	if err := database.Database.Db.Where("user_id = ? AND location_id = ?", userID, c.Params("locId")).First(&fav).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "Not found in favorites!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&fav).Error; err != nil {
		log.Printf("Error deleting favorite: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to remove favorite!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{"action": "removed"})
}

// ApiFavorites lists the caller's favorited locations. Rows whose location
// is gone are skipped; the cron sweeper cleans them up later.
func ApiFavorites(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	db := database.Database.Db

	var favs []models.Favorite
	if err := db.Where("user_id = ?", userID).Find(&favs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch favorites!", nil)
	}

	data := make([]locationController.LocationSummary, 0, len(favs))
	for _, fav := range favs {
		var loc models.Location
		if err := db.First(&loc, fav.LocationID).Error; err != nil {
			continue // orphaned row, skip
		}
		data = append(data, locationController.LocationSummary{
			ID:          loc.ID,
			Name:        loc.Name,
			Lat:         loc.Lat,
			Lng:         loc.Lng,
			Photo:       loc.Photo,
			Description: loc.Description,
		})
	}

	return c.JSON(data)
}
