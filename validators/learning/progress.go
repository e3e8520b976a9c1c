package learningValidator

import (
	"encoding/json"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// ProgressBody carries the client-writable lesson-progress fields.
type ProgressBody struct {
	Completed    *bool `json:"completed"`
	LastPosition *int  `json:"lastPosition"`
}

func UpsertProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := validators.ParseBody(c)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}
		if field := validators.IdentityField(body); field != "" {
			return validators.IdentityFieldError(c, field)
		}

		reqData := new(ProgressBody)
		if err := json.Unmarshal(c.Body(), reqData); err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		}

		if reqData.LastPosition != nil && *reqData.LastPosition < 0 {
			return middleware.Error(c, fiber.StatusBadRequest,
				"Last position must be a non-negative integer", "INVALID_LAST_POSITION")
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
