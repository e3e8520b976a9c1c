package controllers

import (
	"strconv"
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// GetCertificates serves the caller's certificates joined with their
// courses: single via ?id= or a paginated list.
func GetCertificates(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		}

		var certificate models.Certificate
		if err := db.Where("id = ? AND user_id = ?", id, userID).Preload("Course").First(&certificate).Error; err != nil {
			return middleware.Error(c, fiber.StatusNotFound, "Certificate not found", "")
		}
		return middleware.JSON(c, fiber.StatusOK, certificate)
	}

	limit, offset := validators.ListWindow(c)

	var certificates []models.Certificate
	if err := db.Where("user_id = ?", userID).Preload("Course").
		Order("created_at desc").Limit(limit).Offset(offset).Find(&certificates).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, certificates)
}

// IssueCertificate creates the immutable completion record. Requires an
// enrollment at exactly 100% progress and no prior certificate for the
// same (user, course) pair.
func IssueCertificate(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Course not found", "COURSE_NOT_FOUND")
	}

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.Error(c, fiber.StatusBadRequest, "User not enrolled in this course", "NOT_ENROLLED")
	}
	if enrollment.Progress != 100 {
		return middleware.Error(c, fiber.StatusBadRequest,
			"Course must be 100% complete to issue certificate", "INCOMPLETE_COURSE")
	}

	var existing models.Certificate
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.Error(c, fiber.StatusBadRequest,
			"Certificate already exists for this course", "CERTIFICATE_EXISTS")
	}

	var user models.User
	db.First(&user, userID)

	certificate := models.Certificate{
		UserID:         userID,
		CourseID:       courseID,
		IssuedDate:     time.Now(),
		CertificateURL: utils.RenderCertificate(userID, courseID, user.Name, course.Title),
	}
	if err := db.Create(&certificate).Error; err != nil {
		return middleware.Internal(c, err)
	}

	go func(email, name, courseTitle, url string) {
		if email != "" {
			utils.SendCertificateEmail(email, name, courseTitle, url)
		}
	}(user.Email, user.Name, course.Title, certificate.CertificateURL)

	return middleware.JSON(c, fiber.StatusCreated, certificate)
}

// RevokeCertificate deletes a caller-owned certificate.
func RevokeCertificate(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	var certificate models.Certificate
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&certificate).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Certificate not found", "")
	}

	if err := db.Delete(&certificate).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, fiber.Map{
		"message":     "Certificate revoked successfully",
		"certificate": certificate,
	})
}
