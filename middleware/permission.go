package middleware

import (
	"geodir/database"
	"geodir/models"

	"github.com/gofiber/fiber/v2"
)

// Capability predicates. Role checks live here rather than inline in the
// handlers so each handler evaluates exactly one named permission.

// CanManageUsers reports whether the role may administer user accounts.
func CanManageUsers(role string) bool {
	return role == models.RoleAdmin
}

// CanManageCategories reports whether the role may create categories.
func CanManageCategories(role string) bool {
	return role == models.RoleAdmin || role == models.RoleModerator
}

// CanEditLocation reports whether the caller may edit or delete a location.
// Staff roles may touch any location; everyone else only their own.
func CanEditLocation(role string, isOwner bool) bool {
	return isOwner || role == models.RoleAdmin || role == models.RoleModerator
}

// CanDeleteReview reports whether the caller may delete a review.
func CanDeleteReview(role string, isAuthor bool) bool {
	return isAuthor || role == models.RoleAdmin
}

// CurrentUser loads the authenticated user set by the auth middleware.
func CurrentUser(c *fiber.Ctx) (models.User, error) {
	var user models.User

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return user, fiber.ErrUnauthorized
	}

	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return user, err
	}
	return user, nil
}
