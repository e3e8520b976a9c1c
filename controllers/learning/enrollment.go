package controllers

import (
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"
	learningValidator "learnhub/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// GetEnrollments lists the caller's enrollments joined with their courses.
func GetEnrollments(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	limit, offset := validators.ListWindow(c)

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).Preload("Course").
		Order("created_at desc").Limit(limit).Offset(offset).Find(&enrollments).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, enrollments)
}

func EnrollInCourse(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Course not found", "COURSE_NOT_FOUND")
	}

	// Pre-check only; the unique (user, course) index settles races.
	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.Error(c, fiber.StatusBadRequest, "Already enrolled in this course", "ALREADY_ENROLLED")
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.Internal(c, err)
	}

	go func(userID uint, courseTitle string) {
		var user models.User
		if err := database.Database.Db.First(&user, userID).Error; err == nil && user.Email != "" {
			utils.SendEnrollmentEmail(user.Email, user.Name, courseTitle)
		}
	}(userID, course.Title)

	return middleware.JSON(c, fiber.StatusCreated, enrollment)
}

// UpdateEnrollment applies progress and lastAccessed. Crossing to 100
// sets completedAt; dropping below clears it. lastAccessed is the one
// timestamp a client may refresh; absent, it is stamped server-side.
func UpdateEnrollment(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	update, ok := c.Locals("validatedEnrollmentUpdate").(*learningValidator.EnrollmentUpdate)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&enrollment).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Enrollment not found", "")
	}

	now := time.Now()
	if update.LastAccessed != nil {
		enrollment.LastAccessed = update.LastAccessed
	} else {
		enrollment.LastAccessed = &now
	}

	if update.Progress != nil {
		enrollment.Progress = *update.Progress
		if *update.Progress == 100 {
			enrollment.CompletedAt = &now
		} else {
			enrollment.CompletedAt = nil
		}
	}

	// Save writes all fields, including a cleared completedAt.
	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, enrollment)
}

func DeleteEnrollment(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&enrollment).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Enrollment not found", "")
	}

	if err := db.Delete(&enrollment).Error; err != nil {
		return middleware.Internal(c, err)
	}

	return middleware.JSON(c, fiber.StatusOK, fiber.Map{
		"message":    "Successfully unenrolled from course",
		"enrollment": enrollment,
	})
}
