package catalogValidator

import (
	"encoding/json"
	"strings"

	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// LessonBody covers both flat and nested lesson endpoints. CourseID and
// OrderIndex are only required on the flat create route; the nested
// route takes the course from the path and assigns the order itself.
type LessonBody struct {
	CourseID     *uint     `json:"courseId"`
	SectionTitle *string   `json:"sectionTitle"`
	Title        *string   `json:"title"`
	Duration     *string   `json:"duration"`
	VideoURL     *string   `json:"videoUrl"`
	Transcript   *string   `json:"transcript"`
	OrderIndex   *int      `json:"orderIndex"`
	Locked       *bool     `json:"locked"`
	Resources    *[]string `json:"resources"`
}

func parseLessonBody(c *fiber.Ctx) (*LessonBody, error) {
	body, err := validators.ParseBody(c)
	if err != nil {
		return nil, middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	if field := validators.IdentityField(body); field != "" {
		return nil, validators.IdentityFieldError(c, field)
	}

	reqData := new(LessonBody)
	if err := json.Unmarshal(c.Body(), reqData); err != nil {
		return nil, middleware.Error(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	if reqData.Resources != nil {
		for _, link := range *reqData.Resources {
			if !validators.IsURL(link) {
				return nil, middleware.Error(c, fiber.StatusBadRequest,
					"Resources must be a list of valid URLs", "INVALID_RESOURCE_URL")
			}
		}
	}
	return reqData, nil
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errResp := parseLessonBody(c)
		if reqData == nil {
			return errResp
		}

		if reqData.CourseID == nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Course ID is required", "MISSING_COURSE_ID")
		}
		if *reqData.CourseID == 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid course ID is required", "INVALID_COURSE_ID")
		}
		if reqData.SectionTitle == nil || strings.TrimSpace(*reqData.SectionTitle) == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Section title is required", "MISSING_SECTION_TITLE")
		}
		if reqData.Title == nil || strings.TrimSpace(*reqData.Title) == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Title is required", "MISSING_TITLE")
		}
		if reqData.OrderIndex == nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Order index is required", "MISSING_ORDER_INDEX")
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// CreateCourseLesson validates the nested create; the course comes from
// the path and the order index is assigned server-side.
func CreateCourseLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errResp := parseLessonBody(c)
		if reqData == nil {
			return errResp
		}

		if reqData.SectionTitle == nil || strings.TrimSpace(*reqData.SectionTitle) == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Section title is required", "MISSING_SECTION_TITLE")
		}
		if reqData.Title == nil || strings.TrimSpace(*reqData.Title) == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Lesson title is required", "MISSING_TITLE")
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, errResp := parseLessonBody(c)
		if reqData == nil {
			return errResp
		}

		if reqData.SectionTitle != nil && strings.TrimSpace(*reqData.SectionTitle) == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Section title cannot be empty", "MISSING_SECTION_TITLE")
		}
		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			return middleware.Error(c, fiber.StatusBadRequest, "Title cannot be empty", "MISSING_TITLE")
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
