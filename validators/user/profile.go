package userValidator

import (
	"encoding/json"
	"strings"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// protectedFields are profile columns only the server may write.
var protectedFields = []string{"totalStudents", "totalCourses", "id"}

type ProfileBody struct {
	Role    *string `json:"role"`
	Bio     *string `json:"bio"`
	Website *string `json:"website"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Cannot update protected fields (userId, totalStudents, totalCourses, id)",
				"PROTECTED_FIELDS_NOT_ALLOWED")
		}
		for _, field := range protectedFields {
			if _, ok := body[field]; ok {
				return middleware.Error(c, fiber.StatusBadRequest,
					"Cannot update protected fields (userId, totalStudents, totalCourses, id)",
					"PROTECTED_FIELDS_NOT_ALLOWED")
			}
		}

		reqData := new(ProfileBody)
		if err := json.Unmarshal(c.Body(), reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}

		if reqData.Role != nil && *reqData.Role != models.RoleStudent && *reqData.Role != models.RoleInstructor {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Role must be either 'student' or 'instructor'", "INVALID_ROLE")
		}
		if reqData.Website != nil && strings.TrimSpace(*reqData.Website) != "" &&
			!validators.IsURL(strings.TrimSpace(*reqData.Website)) {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Website must be a valid URL", "INVALID_WEBSITE")
		}
		if reqData.Role == nil && reqData.Bio == nil && reqData.Website == nil {
			return middleware.Error(c, fiber.StatusBadRequest, "No valid fields to update", "NO_UPDATES")
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
