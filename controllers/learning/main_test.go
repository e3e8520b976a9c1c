package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/validators"
	learningValidator "learnhub/validators/learning"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// setupApp builds a fresh in-memory database and a fiber app wired the
// same way the production router wires these handlers.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()

	enrollmentGroup := app.Group("/enrollments")
	enrollmentGroup.Get("/", middleware.JWTMiddleware, GetEnrollments)
	enrollmentGroup.Post("/", middleware.JWTMiddleware, learningValidator.EnrollCourse(), EnrollInCourse)
	enrollmentGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), learningValidator.UpdateEnrollment(), UpdateEnrollment)
	enrollmentGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), DeleteEnrollment)

	reviewGroup := app.Group("/reviews")
	reviewGroup.Get("/", middleware.JWTMiddleware, GetReviews)
	reviewGroup.Post("/", middleware.JWTMiddleware, learningValidator.CreateReview(), CreateReview)
	reviewGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), learningValidator.UpdateReview(), UpdateReview)
	reviewGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), DeleteReview)

	certificateGroup := app.Group("/certificates")
	certificateGroup.Get("/", middleware.JWTMiddleware, GetCertificates)
	certificateGroup.Post("/", middleware.JWTMiddleware, learningValidator.IssueCertificate(), IssueCertificate)
	certificateGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), RevokeCertificate)

	lessonGroup := app.Group("/lessons/:lessonId")
	lessonGroup.Get("/notes", middleware.JWTMiddleware, validators.RequireLessonParam(), GetLessonNotes)
	lessonGroup.Post("/notes", middleware.JWTMiddleware, validators.RequireLessonParam(), learningValidator.CreateNote(), CreateLessonNote)
	lessonGroup.Get("/progress", middleware.JWTMiddleware, validators.RequireLessonParam(), GetLessonProgress)
	lessonGroup.Post("/progress", middleware.JWTMiddleware, validators.RequireLessonParam(), learningValidator.UpsertProgress(), UpsertLessonProgress)

	noteGroup := app.Group("/notes")
	noteGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), learningValidator.UpdateNote(), UpdateLessonNote)
	noteGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), DeleteLessonNote)

	return app
}

func createUser(t *testing.T, name, email string) (models.User, string) {
	t.Helper()
	user := models.User{Name: name, Email: email}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)
	return user, token
}

func createCourse(t *testing.T, instructorID uint, title string) models.Course {
	t.Helper()
	course := models.Course{
		Title:        title,
		InstructorID: instructorID,
		Price:        49.99,
		Published:    true,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

func createLesson(t *testing.T, courseID uint, title string) models.Lesson {
	t.Helper()
	lesson := models.Lesson{
		CourseID:     courseID,
		SectionTitle: "Getting Started",
		Title:        title,
		OrderIndex:   1,
	}
	require.NoError(t, database.Database.Db.Create(&lesson).Error)
	return lesson
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
