package controllers

import (
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	learningValidator "learnhub/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// GetLessonProgress returns the caller's progress row for a lesson, or
// a zeroed default when none exists yet.
func GetLessonProgress(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	lessonID := c.Locals("lessonId").(uint)

	var lesson models.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Lesson not found", "LESSON_NOT_FOUND")
	}

	var progress models.LessonProgress
	if err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error; err != nil {
		return middleware.JSON(c, fiber.StatusOK, models.LessonProgress{
			UserID:   userID,
			LessonID: lessonID,
		})
	}
	return middleware.JSON(c, fiber.StatusOK, progress)
}

// UpsertLessonProgress creates the (user, lesson) row on first write
// and updates it afterwards. completedAt is set when completed flips
// true and cleared when it flips false.
func UpsertLessonProgress(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	lessonID := c.Locals("lessonId").(uint)

	reqData, ok := c.Locals("validatedProgress").(*learningValidator.ProgressBody)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	var lesson models.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Lesson not found", "LESSON_NOT_FOUND")
	}

	now := time.Now()

	var progress models.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		progress = models.LessonProgress{
			UserID:   userID,
			LessonID: lessonID,
		}
		if reqData.Completed != nil {
			progress.Completed = *reqData.Completed
			if *reqData.Completed {
				progress.CompletedAt = &now
			}
		}
		if reqData.LastPosition != nil {
			progress.LastPosition = *reqData.LastPosition
		}
		if err := db.Create(&progress).Error; err != nil {
			return middleware.Internal(c, err)
		}
		return middleware.JSON(c, fiber.StatusCreated, progress)
	}

	if reqData.Completed == nil && reqData.LastPosition == nil {
		return middleware.Error(c, fiber.StatusBadRequest,
			"No valid fields provided for update", "NO_UPDATE_FIELDS")
	}

	if reqData.Completed != nil {
		progress.Completed = *reqData.Completed
		if *reqData.Completed {
			progress.CompletedAt = &now
		} else {
			progress.CompletedAt = nil
		}
	}
	if reqData.LastPosition != nil {
		progress.LastPosition = *reqData.LastPosition
	}

	if err := db.Save(&progress).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusCreated, progress)
}
