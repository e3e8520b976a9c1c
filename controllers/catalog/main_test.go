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
	catalogValidator "learnhub/validators/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()

	categoryGroup := app.Group("/categories")
	categoryGroup.Get("/", middleware.JWTMiddleware, GetCategories)
	categoryGroup.Post("/", middleware.JWTMiddleware, catalogValidator.CreateCategory(), CreateCategory)
	categoryGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), catalogValidator.UpdateCategory(), UpdateCategory)
	categoryGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), DeleteCategory)

	courseGroup := app.Group("/courses")
	courseGroup.Get("/", GetCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, catalogValidator.CreateCourse(), CreateCourse)
	courseGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), catalogValidator.UpdateCourse(), UpdateCourse)
	courseGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), DeleteCourse)
	courseGroup.Get("/:courseId/lessons", middleware.JWTMiddleware, validators.RequireCourseParam(), GetCourseLessons)
	courseGroup.Post("/:courseId/lessons", middleware.JWTMiddleware, validators.RequireCourseParam(), catalogValidator.CreateCourseLesson(), CreateCourseLesson)

	lessonGroup := app.Group("/lessons")
	lessonGroup.Get("/", middleware.JWTMiddleware, GetLesson)
	lessonGroup.Post("/", middleware.JWTMiddleware, catalogValidator.CreateLesson(), CreateLesson)
	lessonGroup.Put("/", middleware.JWTMiddleware, validators.RequireID(), catalogValidator.UpdateLesson(), UpdateLesson)
	lessonGroup.Delete("/", middleware.JWTMiddleware, validators.RequireID(), DeleteLesson)

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
