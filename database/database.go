package database

import (
	"fmt"
	"log"
	"os"
	"strings"

	"geodir/config"
	"geodir/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// Migrate performs schema migrations and seeds the rows the application
// assumes exist: the reserved admin account, a demo owner account and the
// default category.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Review{},
		&models.Favorite{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaults(db); err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}

// IsUniqueViolation classifies store-level unique constraint errors, so
// handlers can rely on the insert itself to close check-then-act races.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "23505")
}

// seedDefaults is idempotent; it only inserts rows that are missing.
func seedDefaults(db *gorm.DB) error {
	var category models.Category
	if err := db.First(&category, models.DefaultCategoryID).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		category = models.Category{Name: "General"}
		category.ID = models.DefaultCategoryID
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}

	if err := seedAccount(db, models.ReservedAdminUsername, models.RoleAdmin); err != nil {
		return err
	}
	return seedAccount(db, "owner1", models.RoleOwner)
}

func seedAccount(db *gorm.DB, username, role string) error {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("1234"), config.AppConfig.SaltRound)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}).Error
}
