package controllers

import (
	"strconv"
	"strings"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/validators"
	catalogValidator "learnhub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// CourseDetail joins the display fields every catalog read shows.
type CourseDetail struct {
	models.Course
	InstructorName string `json:"instructorName"`
	CategoryName   string `json:"categoryName"`
}

var courseSortColumns = map[string]string{
	"title":         "title",
	"price":         "price",
	"rating":        "rating",
	"studentsCount": "students_count",
	"createdAt":     "created_at",
}

func withCourseDisplayFields(course models.Course) CourseDetail {
	db := database.Database.Db

	detail := CourseDetail{Course: course}

	var instructor models.User
	if err := db.First(&instructor, course.InstructorID).Error; err == nil {
		detail.InstructorName = instructor.Name
	}
	if course.CategoryID != nil {
		var category models.Category
		if err := db.First(&category, *course.CategoryID).Error; err == nil {
			detail.CategoryName = category.Name
		}
	}
	return detail
}

// GetCourses is the public catalog read: single course via ?id= or a
// filtered, sorted list.
func GetCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		}

		var course models.Course
		if err := db.First(&course, id).Error; err != nil {
			return middleware.Error(c, fiber.StatusNotFound, "Course not found", "")
		}
		return middleware.JSON(c, fiber.StatusOK, withCourseDisplayFields(course))
	}

	limit, offset := validators.ListWindow(c)

	query := db.Model(&models.Course{})
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if category := c.Query("category"); category != "" {
		categoryID, err := strconv.Atoi(category)
		if err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Category ID must be a valid integer", "INVALID_CATEGORY_ID")
		}
		query = query.Where("category_id = ?", categoryID)
	}
	if published := c.Query("published"); published != "" {
		query = query.Where("published = ?", published == "true")
	}

	column, ok := courseSortColumns[c.Query("sort")]
	if !ok {
		column = "created_at"
	}
	direction := "desc"
	if c.Query("order") == "asc" {
		direction = "asc"
	}

	var courses []models.Course
	if err := query.Order(column + " " + direction).Limit(limit).Offset(offset).Find(&courses).Error; err != nil {
		return middleware.Internal(c, err)
	}

	results := make([]CourseDetail, len(courses))
	for i, course := range courses {
		results[i] = withCourseDisplayFields(course)
	}
	return middleware.JSON(c, fiber.StatusOK, results)
}

func CreateCourse(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Error(c, fiber.StatusUnauthorized, "Authentication required", "")
	}

	reqData, ok := c.Locals("validatedCourse").(*catalogValidator.CourseBody)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	title := strings.TrimSpace(*reqData.Title)

	var collision models.Course
	if err := db.Where("title = ?", title).First(&collision).Error; err == nil {
		return middleware.Error(c, fiber.StatusBadRequest, "Course title already exists", "DUPLICATE_NAME")
	}

	if reqData.CategoryID != nil {
		var category models.Category
		if err := db.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Category ID must be a valid integer", "INVALID_CATEGORY_ID")
		}
	}

	course := models.Course{
		Title:        title,
		Description:  strings.TrimSpace(*reqData.Description),
		InstructorID: userID,
		CategoryID:   reqData.CategoryID,
		Price:        *reqData.Price,
	}
	if reqData.Duration != nil {
		course.Duration = strings.TrimSpace(*reqData.Duration)
	}
	if reqData.Image != nil {
		course.Image = strings.TrimSpace(*reqData.Image)
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusCreated, course)
}

func UpdateCourse(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	reqData, ok := c.Locals("validatedCourseUpdate").(*catalogValidator.CourseBody)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	// Ownership is folded into the lookup; a mismatch reads as absence.
	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ?", id, userID).First(&course).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Course not found or access denied", "")
	}

	if reqData.Title != nil {
		title := strings.TrimSpace(*reqData.Title)
		var collision models.Course
		if err := db.Where("title = ? AND id != ?", title, id).First(&collision).Error; err == nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Course title already exists", "DUPLICATE_NAME")
		}
		course.Title = title
	}
	if reqData.Description != nil {
		course.Description = strings.TrimSpace(*reqData.Description)
	}
	if reqData.CategoryID != nil {
		var category models.Category
		if err := db.First(&category, *reqData.CategoryID).Error; err != nil {
			return middleware.Error(c, fiber.StatusBadRequest, "Category ID must be a valid integer", "INVALID_CATEGORY_ID")
		}
		course.CategoryID = reqData.CategoryID
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Duration != nil {
		course.Duration = strings.TrimSpace(*reqData.Duration)
	}
	if reqData.Image != nil {
		course.Image = strings.TrimSpace(*reqData.Image)
	}
	if reqData.Published != nil {
		course.Published = *reqData.Published
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, course)
}

func DeleteCourse(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ?", id, userID).First(&course).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Course not found or access denied", "")
	}

	if err := db.Delete(&course).Error; err != nil {
		return middleware.Internal(c, err)
	}

	return middleware.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Course deleted successfully",
		"course":  course,
	})
}
