package controllers

import (
	"strconv"
	"strings"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	catalogValidator "learnhub/validators/catalog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func resourcesJSON(links *[]string) datatypes.JSON {
	if links == nil || len(*links) == 0 {
		return nil
	}
	out := "["
	for i, link := range *links {
		if i > 0 {
			out += ","
		}
		out += strconv.Quote(link)
	}
	out += "]"
	return datatypes.JSON(out)
}

// GetLesson serves a single lesson via ?id=. Readable by the owning
// instructor or by users enrolled in the parent course; everyone else
// gets an explicit denial since the row itself is not ownership-scoped.
func GetLesson(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	idStr := c.Query("id")
	if idStr == "" {
		return middleware.Error(c, fiber.StatusBadRequest, "Lesson ID is required", "MISSING_LESSON_ID")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return middleware.Error(c, fiber.StatusBadRequest, "Valid lesson ID is required", "INVALID_LESSON_ID")
	}

	var lesson models.Lesson
	if err := db.First(&lesson, id).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Lesson not found", "")
	}

	var course models.Course
	if err := db.First(&course, lesson.CourseID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Lesson not found", "")
	}

	if course.InstructorID != userID {
		var enrollment models.Enrollment
		if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error; err != nil {
			return middleware.Error(c, fiber.StatusForbidden, "Access denied", "")
		}
	}

	return middleware.JSON(c, fiber.StatusOK, lesson)
}

func CreateLesson(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedLesson").(*catalogValidator.LessonBody)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	var course models.Course
	if err := db.First(&course, *reqData.CourseID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Course not found", "COURSE_NOT_FOUND")
	}
	if course.InstructorID != userID {
		return middleware.Error(c, fiber.StatusForbidden, "Only course instructors can create lessons", "INSTRUCTOR_ONLY")
	}

	lesson := models.Lesson{
		CourseID:     course.ID,
		SectionTitle: strings.TrimSpace(*reqData.SectionTitle),
		Title:        strings.TrimSpace(*reqData.Title),
		OrderIndex:   *reqData.OrderIndex,
		Resources:    resourcesJSON(reqData.Resources),
	}
	applyLessonOptions(&lesson, reqData)

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusCreated, lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	reqData, ok := c.Locals("validatedLessonUpdate").(*catalogValidator.LessonBody)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	lesson, course, found := lessonWithCourse(c, id)
	if !found {
		return nil
	}
	if course.InstructorID != userID {
		return middleware.Error(c, fiber.StatusForbidden, "Only course instructors can update lessons", "INSTRUCTOR_ONLY")
	}

	if reqData.SectionTitle != nil {
		lesson.SectionTitle = strings.TrimSpace(*reqData.SectionTitle)
	}
	if reqData.Title != nil {
		lesson.Title = strings.TrimSpace(*reqData.Title)
	}
	if reqData.OrderIndex != nil {
		lesson.OrderIndex = *reqData.OrderIndex
	}
	// An explicit empty array clears the list; an absent field leaves it.
	if reqData.Resources != nil {
		lesson.Resources = resourcesJSON(reqData.Resources)
	}
	applyLessonOptions(lesson, reqData)

	if err := db.Save(lesson).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	lesson, course, found := lessonWithCourse(c, id)
	if !found {
		return nil
	}
	if course.InstructorID != userID {
		return middleware.Error(c, fiber.StatusForbidden, "Only course instructors can delete lessons", "INSTRUCTOR_ONLY")
	}

	if err := db.Delete(lesson).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Lesson deleted successfully",
		"lesson":  lesson,
	})
}

// GetCourseLessons lists a course's lessons grouped by section title,
// ordered by order index within each group.
func GetCourseLessons(c *fiber.Ctx) error {
	db := database.Database.Db
	courseID := c.Locals("courseId").(uint)

	var lessons []models.Lesson
	if err := db.Where("course_id = ?", courseID).Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.Internal(c, err)
	}

	grouped := make(map[string][]models.Lesson)
	for _, lesson := range lessons {
		grouped[lesson.SectionTitle] = append(grouped[lesson.SectionTitle], lesson)
	}
	return middleware.JSON(c, fiber.StatusOK, grouped)
}

// CreateCourseLesson appends a lesson to the course with the next order
// index. Ownership is folded into the course lookup.
func CreateCourseLesson(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseId").(uint)

	reqData, ok := c.Locals("validatedLesson").(*catalogValidator.LessonBody)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	var course models.Course
	if err := db.Where("id = ? AND instructor_id = ?", courseID, userID).First(&course).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound,
			"Course not found or you don't have permission to add lessons", "COURSE_NOT_FOUND_OR_UNAUTHORIZED")
	}

	var count int64
	db.Model(&models.Lesson{}).Where("course_id = ?", courseID).Count(&count)

	lesson := models.Lesson{
		CourseID:     course.ID,
		SectionTitle: strings.TrimSpace(*reqData.SectionTitle),
		Title:        strings.TrimSpace(*reqData.Title),
		OrderIndex:   int(count) + 1,
		Resources:    resourcesJSON(reqData.Resources),
	}
	applyLessonOptions(&lesson, reqData)

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusCreated, lesson)
}

func applyLessonOptions(lesson *models.Lesson, reqData *catalogValidator.LessonBody) {
	if reqData.Duration != nil {
		lesson.Duration = strings.TrimSpace(*reqData.Duration)
	}
	if reqData.VideoURL != nil {
		lesson.VideoURL = strings.TrimSpace(*reqData.VideoURL)
	}
	if reqData.Transcript != nil {
		lesson.Transcript = strings.TrimSpace(*reqData.Transcript)
	}
	if reqData.Locked != nil {
		lesson.Locked = *reqData.Locked
	}
}

// lessonWithCourse loads a lesson and its parent course, writing the
// 404 itself when either is missing.
func lessonWithCourse(c *fiber.Ctx, id uint) (*models.Lesson, *models.Course, bool) {
	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, id).Error; err != nil {
		middleware.Error(c, fiber.StatusNotFound, "Lesson not found", "")
		return nil, nil, false
	}
	var course models.Course
	if err := db.First(&course, lesson.CourseID).Error; err != nil {
		middleware.Error(c, fiber.StatusNotFound, "Lesson not found", "")
		return nil, nil, false
	}
	return &lesson, &course, true
}
