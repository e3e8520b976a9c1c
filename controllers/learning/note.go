package controllers

import (
	"strings"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetLessonNotes lists the caller's notes for a lesson, newest first.
func GetLessonNotes(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	lessonID := c.Locals("lessonId").(uint)

	var notes []models.LessonNote
	if err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("created_at desc").Find(&notes).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, notes)
}

func CreateLessonNote(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	lessonID := c.Locals("lessonId").(uint)
	content := c.Locals("noteContent").(string)

	var lesson models.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Lesson not found", "LESSON_NOT_FOUND")
	}

	note := models.LessonNote{
		UserID:   userID,
		LessonID: lessonID,
		Content:  content,
	}
	if err := db.Create(&note).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusCreated, note)
}

func UpdateLessonNote(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	content, _ := c.Locals("validatedNoteUpdate").(*string)

	var note models.LessonNote
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Note not found", "")
	}

	if content != nil {
		note.Content = strings.TrimSpace(*content)
	}

	if err := db.Save(&note).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, note)
}

func DeleteLessonNote(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	var note models.LessonNote
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&note).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Note not found", "")
	}

	if err := db.Delete(&note).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Note deleted successfully",
		"note":    note,
	})
}
