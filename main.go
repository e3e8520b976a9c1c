package main

import (
	"learnhub/config"
	"learnhub/database"
	catalogRoutes "learnhub/routers/catalogRoutes"
	dashboardRoutes "learnhub/routers/dashboardRoutes"
	learningRoutes "learnhub/routers/learningRoutes"
	userRoutes "learnhub/routers/userRoutes"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
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

	catalogRoutes.SetupCatalogRoutes(app)
	learningRoutes.SetupLearningRoutes(app)
	userRoutes.SetupUserRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	utils.InitializeStatsScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
