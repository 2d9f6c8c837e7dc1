package locationController

import (
	"log"

	"geodir/database"
	"geodir/middleware"
	"geodir/models"
	"geodir/services"
	"geodir/utils"

	"github.com/gofiber/fiber/v2"
)

// LocationSummary is the wire shape used by the map listing and the
// favorites listing.
type LocationSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	Photo        string  `json:"photo"`
	OpeningHours string  `json:"opening_hours"`
	Contacts     string  `json:"contacts"`
	AvgRating    float64 `json:"avg_rating"`
	ReviewsCount int     `json:"reviews_count"`
}

func summarize(loc models.Location, reviews []models.Review) LocationSummary {
	categoryName := ""
	if loc.Category != nil {
		categoryName = loc.Category.Name
	}
	return LocationSummary{
		ID:           loc.ID,
		Name:         loc.Name,
		Lat:          loc.Lat,
		Lng:          loc.Lng,
		Category:     categoryName,
		Description:  loc.Description,
		Address:      loc.Address,
		Photo:        loc.Photo,
		OpeningHours: loc.OpeningHours,
		Contacts:     loc.Contacts,
		AvgRating:    utils.AverageRating(reviews),
		ReviewsCount: len(reviews),
	}
}

// Index returns the landing page payload: the category list that drives
// the map filter control.
func Index(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{
		"categories": categories,
		"flash":      middleware.TakeFlash(c),
	})
}

// ApiLocations lists every location, optionally filtered by category name.
// No pagination: the map renders the full result set.
func ApiLocations(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.Location{}).Preload("Category")
	if cat := c.Query("category"); cat != "" {
		query = query.
			Joins("JOIN categories ON categories.id = locations.category_id").
			Where("categories.name = ?", cat)
	}

	var locations []models.Location
	if err := query.Find(&locations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch locations!", nil)
	}

	data := make([]LocationSummary, 0, len(locations))
	for _, loc := range locations {
		var reviews []models.Review
		if err := db.Where("location_id = ?", loc.ID).Find(&reviews).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch reviews!", nil)
		}
		data = append(data, summarize(loc, reviews))
	}

	return c.JSON(data)
}

// LocationDetail returns the location page payload: the location, its
// reviews and whether the caller has favorited it.
func LocationDetail(c *fiber.Ctx) error {
	db := database.Database.Db

	var loc models.Location
	if err := db.Preload("Category").First(&loc, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "Location not found!", nil)
	}

	var reviews []models.Review
	if err := db.Where("location_id = ?", loc.ID).Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch reviews!", nil)
	}

	isFav := false
	if userID, ok := c.Locals("userId").(uint); ok {
		var count int64
		if err := db.Model(&models.Favorite{}).Where("user_id = ? AND location_id = ?", userID, loc.ID).Count(&count).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch favorites!", nil)
		}
		isFav = count > 0
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{
		"location": summarize(loc, reviews),
		"reviews":  reviews,
		"is_fav":   isFav,
		"flash":    middleware.TakeFlash(c),
	})
}

type locationPayload struct {
	Name         string  `json:"name" form:"name"`
	Description  string  `json:"description" form:"description"`
	Lat          float64 `json:"lat" form:"lat"`
	Lng          float64 `json:"lng" form:"lng"`
	Address      string  `json:"address" form:"address"`
	Photo        string  `json:"photo" form:"photo"`
	OpeningHours string  `json:"opening_hours" form:"opening_hours"`
	Contacts     string  `json:"contacts" form:"contacts"`
	Category     *uint   `json:"category" form:"category"`
}

func (p *locationPayload) categoryID() *uint {
	if p.Category != nil && *p.Category != 0 {
		return p.Category
	}
	id := models.DefaultCategoryID
	return &id
}

// AddLocationApi lets staff create a curated location (no owner).
func AddLocationApi(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "error", "User not found!", nil)
	}
	if !middleware.CanManageCategories(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, "error", "Access denied!", nil)
	}

	reqData := new(locationPayload)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
	}

	loc := models.Location{
		Name:        reqData.Name,
		Lat:         reqData.Lat,
		Lng:         reqData.Lng,
		Description: reqData.Description,
		CategoryID:  reqData.categoryID(),
	}

	if err := database.Database.Db.Create(&loc).Error; err != nil {
		log.Printf("Error creating location: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to create location!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{"id": loc.ID})
}

// AddMyLocation creates a location owned by the caller. When the payload
// has an address but no coordinates, the geocoder (if configured) fills
// them in.
func AddMyLocation(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData := new(locationPayload)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
	}

	if reqData.Lat == 0 && reqData.Lng == 0 {
		result, err := services.GeocodeAddress(reqData.Address)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Coordinates are required!", nil)
		}
		reqData.Lat = result.Lat
		reqData.Lng = result.Lng
	}

	ownerID := userID
	loc := models.Location{
		Name:         reqData.Name,
		Lat:          reqData.Lat,
		Lng:          reqData.Lng,
		Description:  reqData.Description,
		Address:      reqData.Address,
		Photo:        reqData.Photo,
		OpeningHours: reqData.OpeningHours,
		Contacts:     reqData.Contacts,
		CategoryID:   reqData.categoryID(),
		OwnerID:      &ownerID,
	}

	if err := database.Database.Db.Create(&loc).Error; err != nil {
		log.Printf("Error creating location: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to create location!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{"id": loc.ID})
}

type locationUpdate struct {
	Name         *string `json:"name" form:"name"`
	Description  *string `json:"description" form:"description"`
	Address      *string `json:"address" form:"address"`
	Photo        *string `json:"photo" form:"photo"`
	OpeningHours *string `json:"opening_hours" form:"opening_hours"`
	Contacts     *string `json:"contacts" form:"contacts"`
	Category     *uint   `json:"category" form:"category"`
}

func applyUpdate(loc *models.Location, upd *locationUpdate) {
	if upd.Name != nil {
		loc.Name = *upd.Name
	}
	if upd.Description != nil {
		loc.Description = *upd.Description
	}
	if upd.Address != nil {
		loc.Address = *upd.Address
	}
	if upd.Photo != nil {
		loc.Photo = *upd.Photo
	}
	if upd.OpeningHours != nil {
		loc.OpeningHours = *upd.OpeningHours
	}
	if upd.Contacts != nil {
		loc.Contacts = *upd.Contacts
	}
	if upd.Category != nil && *upd.Category != 0 {
		loc.CategoryID = upd.Category
	}
}

// loadEditable fetches the location and checks the caller's right to
// change it. The fiber errors map to 401/404/403 in the caller.
func loadEditable(c *fiber.Ctx) (models.Location, error) {
	var loc models.Location

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return loc, fiber.ErrUnauthorized
	}

	if err := database.Database.Db.First(&loc, c.Params("id")).Error; err != nil {
		return loc, fiber.ErrNotFound
	}

	isOwner := loc.OwnerID != nil && *loc.OwnerID == user.ID
	if !middleware.CanEditLocation(user.Role, isOwner) {
		return loc, fiber.ErrForbidden
	}
	return loc, nil
}

// EditMyLocation applies a partial update to a location the caller may edit.
func EditMyLocation(c *fiber.Ctx) error {
	loc, err := loadEditable(c)
	if err != nil {
		return editError(c, err)
	}

	upd := new(locationUpdate)
	if err := c.BodyParser(upd); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
	}

	applyUpdate(&loc, upd)
	if err := database.Database.Db.Save(&loc).Error; err != nil {
		log.Printf("Error updating location: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to update location!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "Location updated.", nil)
}

// DeleteMyLocation removes a location the caller may edit. Dependent
// reviews and favorites go with it via the store's cascade rules.
func DeleteMyLocation(c *fiber.Ctx) error {
	loc, err := loadEditable(c)
	if err != nil {
		return editError(c, err)
	}

	if err := database.Database.Db.Unscoped().Delete(&loc).Error; err != nil {
		log.Printf("Error deleting location: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to delete location!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "Location deleted.", nil)
}

func editError(c *fiber.Ctx, err error) error {
	switch err {
	case fiber.ErrUnauthorized:
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "error", "User not found!", nil)
	case fiber.ErrNotFound:
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "Location not found!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusForbidden, "error", "You cannot edit this location!", nil)
	}
}

// MyLocations returns the caller's own submitted locations.
func MyLocations(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var locations []models.Location
	if err := database.Database.Db.Preload("Category").Where("owner_id = ?", userID).Find(&locations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch locations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{
		"locations": locations,
		"flash":     middleware.TakeFlash(c),
	})
}

// EditLocationPage serves the edit form payload (GET) and applies the
// submitted form (POST), in both cases redirect-style like the page flow.
func EditLocationPage(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		middleware.SetFlash(c, "Please log in first")
		return c.Redirect("/login")
	}

	var loc models.Location
	if err := database.Database.Db.First(&loc, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "Location not found!", nil)
	}

	isOwner := loc.OwnerID != nil && *loc.OwnerID == user.ID
	if !middleware.CanEditLocation(user.Role, isOwner) {
		middleware.SetFlash(c, "You cannot edit this location")
		return c.Redirect("/my_locations")
	}

	if c.Method() == fiber.MethodPost {
		upd := new(locationUpdate)
		if err := c.BodyParser(upd); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
		}

		applyUpdate(&loc, upd)
		if err := database.Database.Db.Save(&loc).Error; err != nil {
			log.Printf("Error updating location: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to update location!", nil)
		}

		middleware.SetFlash(c, "Location updated")
		return c.Redirect("/my_locations")
	}

	var categories []models.Category
	if err := database.Database.Db.Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{
		"location":   loc,
		"categories": categories,
	})
}
