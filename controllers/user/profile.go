package controllers

import (
	"strings"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	userValidator "learnhub/validators/user"

	"github.com/gofiber/fiber/v2"
)

// ProfileDetail joins the profile with its user display fields.
type ProfileDetail struct {
	models.Profile
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserImage string `json:"userImage"`
}

func withUserFields(profile models.Profile) ProfileDetail {
	detail := ProfileDetail{Profile: profile}

	var user models.User
	if err := database.Database.Db.First(&user, profile.UserID).Error; err == nil {
		detail.UserName = user.Name
		detail.UserEmail = user.Email
		detail.UserImage = user.Image
	}
	return detail
}

// GetProfile returns the caller's profile, creating a student profile
// on first access.
func GetProfile(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		return middleware.JSON(c, fiber.StatusOK, withUserFields(profile))
	}

	profile = models.Profile{
		UserID: userID,
		Role:   models.RoleStudent,
	}
	if err := db.Create(&profile).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, withUserFields(profile))
}

func UpdateProfile(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedProfileUpdate").(*userValidator.ProfileBody)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Profile not found", "PROFILE_NOT_FOUND")
	}

	if reqData.Role != nil {
		profile.Role = *reqData.Role
	}
	if reqData.Bio != nil {
		profile.Bio = strings.TrimSpace(*reqData.Bio)
	}
	if reqData.Website != nil {
		profile.Website = strings.TrimSpace(*reqData.Website)
	}

	if err := db.Save(&profile).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, withUserFields(profile))
}
