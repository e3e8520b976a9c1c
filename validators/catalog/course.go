package catalogValidator

import (
	"encoding/json"
	"strings"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// CourseBody is the client-mutable subset of a course. Pointer fields
// distinguish "absent" from zero values on partial updates.
type CourseBody struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CategoryID  *uint    `json:"categoryId"`
	Price       *float64 `json:"price"`
	Duration    *string  `json:"duration"`
	Image       *string  `json:"image"`
	Published   *bool    `json:"published"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return validators.IdentityFieldError(c, field)
		}

		reqData := new(CourseBody)
		if err := json.Unmarshal(c.Body(), reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}

		if reqData.Title == nil || strings.TrimSpace(*reqData.Title) == "" ||
			reqData.Description == nil || strings.TrimSpace(*reqData.Description) == "" ||
			reqData.Price == nil {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Title, description, and price are required", "MISSING_REQUIRED_FIELDS")
		}
		if *reqData.Price < 0 {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Price must be a non-negative number", "INVALID_PRICE")
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return validators.IdentityFieldError(c, field)
		}

		reqData := new(CourseBody)
		if err := json.Unmarshal(c.Body(), reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}

		if reqData.Price != nil && *reqData.Price < 0 {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Price must be a non-negative number", "INVALID_PRICE")
		}
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Title cannot be empty", "INVALID_NAME")
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
