package learningValidator

import (
	"encoding/json"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

func IssueCertificate() fiber.Handler {
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
			return middleware.Error(c, fiber.StatusBadRequest, "Valid course ID is required", "MISSING_COURSE_ID")
		}

		if reqData.CourseID == nil || *reqData.CourseID == 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid course ID is required", "MISSING_COURSE_ID")
		}

		c.Locals("courseID", *reqData.CourseID)
		return c.Next()
	}
}
