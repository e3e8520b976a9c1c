package learningRoutes

import (
	controllers "learnhub/controllers/learning"
	"learnhub/middleware"
	"learnhub/validators"
	learningValidator "learnhub/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningRoutes sets up enrollment, review, certificate,
// lesson note and lesson progress routes
func SetupLearningRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments")
	enrollmentGroup.Get("/", middleware.JWTMiddleware, controllers.GetEnrollments)
	enrollmentGroup.Post("/", middleware.JWTMiddleware, learningValidator.EnrollCourse(), controllers.EnrollInCourse)
	enrollmentGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), learningValidator.UpdateEnrollment(), controllers.UpdateEnrollment)
	enrollmentGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), controllers.DeleteEnrollment)

	reviewGroup := app.Group("/reviews")
	reviewGroup.Get("/", middleware.JWTMiddleware, controllers.GetReviews)
	reviewGroup.Post("/", middleware.JWTMiddleware, learningValidator.CreateReview(), controllers.CreateReview)
	reviewGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), learningValidator.UpdateReview(), controllers.UpdateReview)
	reviewGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), controllers.DeleteReview)

	certificateGroup := app.Group("/certificates")
	certificateGroup.Get("/", middleware.JWTMiddleware, controllers.GetCertificates)
	certificateGroup.Post("/", middleware.JWTMiddleware, learningValidator.IssueCertificate(), controllers.IssueCertificate)
	certificateGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), controllers.RevokeCertificate)

	// Notes and progress hang off the lesson they belong to
	lessonGroup := app.Group("/lessons/:lessonId")
	lessonGroup.Get("/notes", middleware.JWTMiddleware, validators.RequireLessonParam(), controllers.GetLessonNotes)
	lessonGroup.Post("/notes", middleware.JWTMiddleware, validators.RequireLessonParam(), learningValidator.CreateNote(), controllers.CreateLessonNote)
	lessonGroup.Get("/progress", middleware.JWTMiddleware, validators.RequireLessonParam(), controllers.GetLessonProgress)
	lessonGroup.Post("/progress", middleware.JWTMiddleware, validators.RequireLessonParam(), learningValidator.UpsertProgress(), controllers.UpsertLessonProgress)

	noteGroup := app.Group("/notes")
	noteGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), learningValidator.UpdateNote(), controllers.UpdateLessonNote)
	noteGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), controllers.DeleteLessonNote)
}
