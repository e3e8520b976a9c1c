package learningValidator

import (
	"encoding/json"
	"strings"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

func CreateNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return validators.IdentityFieldError(c, field)
		}

		reqData := new(struct {
			Content string `json:"content"`
		})
		if err := json.Unmarshal(c.Body(), reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Content is required and cannot be empty", "MISSING_CONTENT")
		}

		reqData.Content = strings.TrimSpace(reqData.Content)
		if reqData.Content == "" {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Content is required and cannot be empty", "MISSING_CONTENT")
		}

		c.Locals("noteContent", reqData.Content)
		return c.Next()
	}
}

func UpdateNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return validators.IdentityFieldError(c, field)
		}

		reqData := new(struct {
			Content *string `json:"content"`
		})
		if err := json.Unmarshal(c.Body(), reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Content cannot be empty", "INVALID_CONTENT")
		}

		if reqData.Content != nil && strings.TrimSpace(*reqData.Content) == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Content cannot be empty", "INVALID_CONTENT")
		}

		c.Locals("validatedNoteUpdate", reqData.Content)
		return c.Next()
	}
}
