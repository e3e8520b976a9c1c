package validators

import (
	"encoding/json"
	"strconv"
	"strings"

	"learnhub/config"
	"learnhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// identityFields are owner columns that are always derived from the
// authenticated session and never accepted from a request body.
var identityFields = []string{"userId", "user_id", "instructorId", "instructor_id"}

// ParseBody decodes the request body into a raw key map so validators
// can inspect which fields the client actually sent.
func ParseBody(c *fiber.Ctx) (map[string]json.RawMessage, error) {
	body := make(map[string]json.RawMessage)
	if len(c.Body()) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return nil, err
	}
	return body, nil
}

// IdentityField returns the first forbidden identity field present in
// the body, or "" when the body is clean.
func IdentityField(body map[string]json.RawMessage) string {
	for _, field := range identityFields {
		if _, ok := body[field]; ok {
			return field
		}
	}
	return ""
}

// IdentityFieldError writes the rejection for a spoofed identity field.
func IdentityFieldError(c *fiber.Ctx, field string) error {
	if strings.HasPrefix(field, "instructor") {
		return middleware.Error(c, fiber.StatusBadRequest,
			"Instructor ID cannot be provided in request body", "INSTRUCTOR_ID_NOT_ALLOWED")
	}
	return middleware.Error(c, fiber.StatusBadRequest,
		"User ID cannot be provided in request body", "USER_ID_NOT_ALLOWED")
}

// RequireID validates the ?id= query parameter shared by single-row
// GET/PUT/DELETE endpoints and stashes it as c.Locals("id") (uint).
func RequireID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Query("id")))
		if err != nil || id <= 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		}
		c.Locals("id", uint(id))
		return c.Next()
	}
}

// RequireLessonParam validates the :lessonId path parameter and
// stashes it as c.Locals("lessonId") (uint).
func RequireLessonParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("lessonId"))
		if err != nil || id <= 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid lesson ID is required", "INVALID_LESSON_ID")
		}
		c.Locals("lessonId", uint(id))
		return c.Next()
	}
}

// RequireCourseParam validates the :courseId path parameter and
// stashes it as c.Locals("courseId") (uint).
func RequireCourseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("courseId"))
		if err != nil || id <= 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid course ID is required", "INVALID_COURSE_ID")
		}
		c.Locals("courseId", uint(id))
		return c.Next()
	}
}

// IsURL reports whether s looks like an absolute URL.
func IsURL(s string) bool {
	return validate.Var(s, "url") == nil
}

// ListWindow resolves limit/offset query parameters with the
// configured hard cap on limit.
func ListWindow(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > config.AppConfig.ListLimitMax {
		limit = config.AppConfig.ListLimitMax
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
