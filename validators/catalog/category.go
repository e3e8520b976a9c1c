package catalogValidator

import (
	"encoding/json"
	"strings"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return validators.IdentityFieldError(c, field)
		}

		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})
		if err := json.Unmarshal(c.Body(), reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Description = strings.TrimSpace(reqData.Description)
		if reqData.Name == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Name is required", "MISSING_REQUIRED_FIELD")
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func UpdateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return validators.IdentityFieldError(c, field)
		}

		reqData := new(struct {
			Name        *string `json:"name"`
			Description *string `json:"description"`
		})
		if err := json.Unmarshal(c.Body(), reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Name cannot be empty", "INVALID_NAME")
		}

		c.Locals("validatedCategoryUpdate", reqData)
		return c.Next()
	}
}
