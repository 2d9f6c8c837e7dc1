package authController

import (
	"log"
	"time"

	"geodir/config"
	"geodir/database"
	"geodir/middleware"
	"geodir/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type credentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
	})
}

// Register creates an account and logs the new user in immediately.
func Register(c *fiber.Ctx) error {
	reqData := new(credentials)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
	}

	db := database.Database.Db

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
			return fiber.ErrConflict
		}
		return tx.Create(&newUser).Error
	})
	if err == fiber.ErrConflict || database.IsUniqueViolation(err) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Username is already taken!", nil)
	}
	if err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to register user!", nil)
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Username, newUser.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to process your request!", nil)
	}
	setTokenCookie(c, token)

	return middleware.JsonResponse(c, fiber.StatusCreated, "ok", "User registered successfully.", fiber.Map{
		"token": token,
		"user":  newUser,
	})
}

// Login verifies credentials and issues a token.
func Login(c *fiber.Ctx) error {
	reqData := new(credentials)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "error", "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "error", "Invalid username or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "error", "Invalid username or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "error", "Failed to process your request!", nil)
	}
	setTokenCookie(c, token)

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "Logged in successfully.", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout clears the token cookie and sends the caller back to the index.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/")
}

// Profile returns the current user's page payload.
func Profile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "error", "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "ok", "", fiber.Map{
		"user":  user,
		"flash": middleware.TakeFlash(c),
	})
}
