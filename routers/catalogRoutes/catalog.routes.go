package catalogRoutes

import (
	controllers "learnhub/controllers/catalog"
	"learnhub/middleware"
	"learnhub/validators"
	catalogValidator "learnhub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up category, course and lesson routes
func SetupCatalogRoutes(app *fiber.App) {
	categoryGroup := app.Group("/categories")
	categoryGroup.Get("/", middleware.JWTMiddleware, controllers.GetCategories)
	categoryGroup.Post("/", middleware.JWTMiddleware, catalogValidator.CreateCategory(), controllers.CreateCategory)
	categoryGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), catalogValidator.UpdateCategory(), controllers.UpdateCategory)
	categoryGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), controllers.DeleteCategory)

	// Course listing stays public so the catalog can be browsed before login.
	courseGroup := app.Group("/courses")
	courseGroup.Get("/", controllers.GetCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, catalogValidator.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), catalogValidator.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), controllers.DeleteCourse)

	// Nested lesson listing and creation per course
	courseGroup.Get("/:courseId/lessons", middleware.JWTMiddleware, validators.RequireCourseParam(), controllers.GetCourseLessons)
	courseGroup.Post("/:courseId/lessons", middleware.JWTMiddleware, validators.RequireCourseParam(), catalogValidator.CreateCourseLesson(), controllers.CreateCourseLesson)

	lessonGroup := app.Group("/lessons")
	lessonGroup.Get("/", middleware.JWTMiddleware, controllers.GetLesson)
	lessonGroup.Post("/", middleware.JWTMiddleware, catalogValidator.CreateLesson(), controllers.CreateLesson)
	lessonGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), catalogValidator.UpdateLesson(), controllers.UpdateLesson)
	lessonGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), controllers.DeleteLesson)
}
