package dashboardRoutes

import (
	controllers "learnhub/controllers/dashboard"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the role-gated dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashGroup := app.Group("/dashboard")
	dashGroup.Get("/instructor", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor), controllers.GetInstructorDashboard)
	dashGroup.Get("/student", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), controllers.GetStudentDashboard)
}
