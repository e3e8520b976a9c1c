package userRoutes

import (
	controllers "learnhub/controllers/user"
	"learnhub/middleware"
	userValidator "learnhub/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile routes
func SetupUserRoutes(app *fiber.App) {
	profileGroup := app.Group("/profile")
	profileGroup.Get("/", middleware.JWTMiddleware, controllers.GetProfile)
	profileGroup.Put("/", middleware.JWTMiddleware, userValidator.UpdateProfile(), controllers.UpdateProfile)
}
