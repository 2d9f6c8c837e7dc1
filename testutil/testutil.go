package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"geodir/config"
	"geodir/database"
	"geodir/middleware"
	"geodir/models"
	adminRoutes "geodir/routers/adminRoutes"
	authRoutes "geodir/routers/authRoutes"
	favoriteRoutes "geodir/routers/favoriteRoutes"
	locationRoutes "geodir/routers/locationRoutes"
	reviewRoutes "geodir/routers/reviewRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestPassword is the password given to every user created through CreateUser.
const TestPassword = "password123"

// SetupApp builds a fully routed Fiber app over a fresh in-memory sqlite
// database and installs it as the global database instance.
func SetupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	locationRoutes.SetupLocationRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	favoriteRoutes.SetupFavoriteRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	return app, db
}

// CreateUser inserts a user with the given role and TestPassword.
func CreateUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{Username: username, Password: string(hashed), Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

// TokenFor issues a token for the user, as login would.
func TokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

// CreateLocation inserts a location with the default category.
func CreateLocation(t *testing.T, db *gorm.DB, name string, ownerID *uint) models.Location {
	t.Helper()

	categoryID := models.DefaultCategoryID
	loc := models.Location{
		Name:       name,
		Lat:        1.0,
		Lng:        2.0,
		CategoryID: &categoryID,
		OwnerID:    ownerID,
	}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("Failed to create location %s: %v", name, err)
	}
	return loc
}

// Request performs an HTTP request against the app. A non-empty token is
// sent as a bearer token; a non-nil body is JSON-encoded.
func Request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	return resp
}

// DecodeJSON reads the response body into out.
func DecodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}
