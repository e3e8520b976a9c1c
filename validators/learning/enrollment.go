package learningValidator

import (
	"encoding/json"
	"time"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return validators.IdentityFieldError(c, field)
		}

		reqData := new(struct {
			CourseID *uint `json:"courseId"`
		})
		if err := json.Unmarshal(c.Body(), reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid course ID is required", "INVALID_COURSE_ID")
		}

		if reqData.CourseID == nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Course ID is required", "MISSING_COURSE_ID")
		}
		if *reqData.CourseID == 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid course ID is required", "INVALID_COURSE_ID")
		}

		c.Locals("courseID", *reqData.CourseID)
		return c.Next()
	}
}

// EnrollmentUpdate carries the two client-writable enrollment fields.
// LastAccessed is the one timestamp the contract lets clients refresh.
type EnrollmentUpdate struct {
	Progress     *int       `json:"-"`
	LastAccessed *time.Time `json:"-"`
}

func UpdateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return validators.IdentityFieldError(c, field)
		}

		raw := new(struct {
			Progress     *int    `json:"progress"`
			LastAccessed *string `json:"lastAccessed"`
		})
		if err := json.Unmarshal(c.Body(), raw); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Progress must be between 0 and 100", "INVALID_PROGRESS")
		}

		if raw.Progress != nil && (*raw.Progress < 0 || *raw.Progress > 100) {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Progress must be between 0 and 100", "INVALID_PROGRESS")
		}

		update := &EnrollmentUpdate{Progress: raw.Progress}
		if raw.LastAccessed != nil {
			ts, err := time.Parse(time.RFC3339, *raw.LastAccessed)
			if err != nil {
				return middleware.Error(c, fiber.StatusBadRequest,
					"lastAccessed must be an RFC 3339 timestamp", "INVALID_LAST_ACCESSED")
			}
			update.LastAccessed = &ts
		}

		c.Locals("validatedEnrollmentUpdate", update)
		return c.Next()
	}
}
