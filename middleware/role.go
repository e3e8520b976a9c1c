package middleware

import (
	"learnhub/database"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that gates a route on the caller's
// profile role. A missing profile counts as a mismatch.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return Error(c, fiber.StatusUnauthorized, "Authentication required", "")
		}

		var profile models.Profile
		err := database.Database.Db.Where("user_id = ?", userID).First(&profile).Error
		if err != nil || profile.Role != requiredRole {
			if requiredRole == models.RoleInstructor {
				return Error(c, fiber.StatusForbidden, "Access denied. Instructor role required.", "INSTRUCTOR_REQUIRED")
			}
			return Error(c, fiber.StatusForbidden, "Student access required", "INSUFFICIENT_PERMISSIONS")
		}

		c.Locals("profile", &profile)
		return c.Next()
	}
}
