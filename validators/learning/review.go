package learningValidator

import (
	"encoding/json"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

type ReviewBody struct {
	CourseID *uint   `json:"courseId"`
	Rating   *int    `json:"rating"`
	Comment  *string `json:"comment"`
}

func parseReviewBody(c *fiber.Ctx) (*ReviewBody, error) {
	body, err := validators.ParseBody(c)
	if err != nil {
		return nil, middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	if field := validators.IdentityField(body); field != "" {
		return nil, validators.IdentityFieldError(c, field)
	}

	reqData := new(ReviewBody)
	if err := json.Unmarshal(c.Body(), reqData); err != nil {
		return nil, middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	if reqData.Rating != nil && (*reqData.Rating < 1 || *reqData.Rating > 5) {
		return nil, middleware.Error(c, fiber.StatusBadRequest,
			"Rating must be an integer between 1 and 5", "INVALID_RATING")
	}
	return reqData, nil
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errResp := parseReviewBody(c)
		if reqData == nil {
			return errResp
		}

		if reqData.CourseID == nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Course ID is required", "MISSING_COURSE_ID")
		}
		if *reqData.CourseID == 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid course ID is required", "INVALID_COURSE_ID")
		}
		if reqData.Rating == nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Rating is required", "MISSING_RATING")
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errResp := parseReviewBody(c)
		if reqData == nil {
			return errResp
		}

		c.Locals("validatedReviewUpdate", reqData)
		return c.Next()
	}
}
