package main

import (
	"log"

	"geodir/config"
	"geodir/database"
	adminRoutes "geodir/routers/adminRoutes"
	authRoutes "geodir/routers/authRoutes"
	favoriteRoutes "geodir/routers/favoriteRoutes"
	locationRoutes "geodir/routers/locationRoutes"
	reviewRoutes "geodir/routers/reviewRoutes"
	"geodir/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	locationRoutes.SetupLocationRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	favoriteRoutes.SetupFavoriteRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	services.StartCleanupScheduler()

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
