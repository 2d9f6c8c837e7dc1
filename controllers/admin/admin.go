package adminController

import (
	"log"

	"geodir/config"
	"geodir/database"
	"geodir/middleware"
	"geodir/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminPanel returns the admin page payload. Non-admins get flashed back
// to the index, page-flow style.
func AdminPanel(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		middleware.SetFlash(c, "Please log in first")
		return c.Redirect("/login")
	}

	if !middleware.CanManageUsers(user.Role) {
		middleware.SetFlash(c, "Access denied")
		return c.Redirect("/")
	}

	db := database.Database.Db

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch users!", nil)
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to fetch categories!", nil)
	}

	var totalUsers, totalCategories int64
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.Category{}).Count(&totalCategories)

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{
		"users":            users,
		"categories":       categories,
		"total_users":      totalUsers,
		"total_categories": totalCategories,
		"flash":            middleware.TakeFlash(c),
	})
}

// requireAdmin resolves the caller and enforces the admin capability.
// The fiber errors map to 401/403 in adminError.
func requireAdmin(c *fiber.Ctx) (models.User, error) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return user, fiber.ErrUnauthorized
	}
	if !middleware.CanManageUsers(user.Role) {
		return user, fiber.ErrForbidden
	}
	return user, nil
}

func adminError(c *fiber.Ctx, err error) error {
	if err == fiber.ErrUnauthorized {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "error", "User not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusForbidden, "error", "Access denied!", nil)
}

// AddUser creates an account with an explicit role. Admin only.
func AddUser(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return adminError(c, err)
	}

	reqData, ok := c.Locals("validatedUser").(*struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
		Role     string `json:"role" form:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request data!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Password: string(hashedPassword),
		Role:     reqData.Role,
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
			return fiber.ErrConflict
		}
		return tx.Create(&newUser).Error
	})
	if err == fiber.ErrConflict || database.IsUniqueViolation(err) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "User already exists!", nil)
	}
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", nil)
}

// DeleteUser removes an account. The reserved admin can never be deleted,
// regardless of who asks.
func DeleteUser(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return adminError(c, err)
	}

	db := database.Database.Db

	var target models.User
	if err := db.First(&target, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "User not found!", nil)
	}

	if target.Username == models.ReservedAdminUsername {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "The reserved admin cannot be deleted!", nil)
	}

	if err := db.Unscoped().Delete(&target).Error; err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", nil)
}

// EditUser changes an account's role. Admin only.
func EditUser(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return adminError(c, err)
	}

	reqData := new(struct {
		Role string `json:"role" form:"role"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
	}
	if !models.ValidRole(reqData.Role) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Unknown role!", nil)
	}

	db := database.Database.Db

	var target models.User
	if err := db.First(&target, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "error", "User not found!", nil)
	}

	target.Role = reqData.Role
	if err := db.Save(&target).Error; err != nil {
		log.Printf("Error updating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", nil)
}

// AddCategory creates a category. Admins and moderators only; names are
// unique, compared case-sensitively.
func AddCategory(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "error", "User not found!", nil)
	}
	if !middleware.CanManageCategories(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, "error", "Access denied!", nil)
	}

	reqData := new(struct {
		Name string `json:"name" form:"name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
	}
	if reqData.Name == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Name is required!", nil)
	}

	category := models.Category{Name: reqData.Name}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", reqData.Name).First(&models.Category{}).Error; err == nil {
			return fiber.ErrConflict
		}
		return tx.Create(&category).Error
	})
	if err == fiber.ErrConflict || database.IsUniqueViolation(err) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Category already exists!", nil)
	}
	if err != nil {
		log.Printf("Error creating category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{"name": category.Name})
}
