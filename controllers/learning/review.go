package controllers

import (
	"strconv"
	"strings"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/validators"
	learningValidator "learnhub/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// ReviewDetail joins the display fields shown alongside a review.
type ReviewDetail struct {
	models.Review
	UserName    string `json:"userName"`
	CourseTitle string `json:"courseTitle"`
}

func withReviewDisplayFields(review models.Review) ReviewDetail {
	db := database.Database.Db

	detail := ReviewDetail{Review: review}

	var user models.User
	if err := db.First(&user, review.UserID).Error; err == nil {
		detail.UserName = user.Name
	}
	var course models.Course
	if err := db.First(&course, review.CourseID).Error; err == nil {
		detail.CourseTitle = course.Title
	}
	return detail
}

// GetReviews serves the caller's reviews: single via ?id= (404 when the
// row is another user's) or a filtered list.
func GetReviews(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid ID is required", "INVALID_ID")
		}

		var review models.Review
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&review).Error; err != nil {
			return middleware.Error(c, fiber.StatusNotFound, "Review not found", "")
		}
		return middleware.JSON(c, fiber.StatusOK, withReviewDisplayFields(review))
	}

	limit, offset := validators.ListWindow(c)

	query := db.Model(&models.Review{}).Where("user_id = ?", userID)
	if courseStr := c.Query("courseId"); courseStr != "" {
		courseID, err := strconv.Atoi(courseStr)
		if err != nil || courseID <= 0 {
			return middleware.Error(c, fiber.StatusBadRequest, "Valid course ID is required", "INVALID_COURSE_ID")
		}
		query = query.Where("course_id = ?", courseID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("comment LIKE ?", "%"+search+"%")
	}

	column := "created_at"
	if c.Query("sort") == "rating" {
		column = "rating"
	}
	direction := "desc"
	if c.Query("order") == "asc" {
		direction = "asc"
	}

	var reviews []models.Review
	if err := query.Order(column + " " + direction).Limit(limit).Offset(offset).Find(&reviews).Error; err != nil {
		return middleware.Internal(c, err)
	}

	results := make([]ReviewDetail, len(reviews))
	for i, review := range reviews {
		results[i] = withReviewDisplayFields(review)
	}
	return middleware.JSON(c, fiber.StatusOK, results)
}

func CreateReview(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedReview").(*learningValidator.ReviewBody)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}
	courseID := *reqData.CourseID

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Course not found", "COURSE_NOT_FOUND")
	}

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.Error(c, fiber.StatusBadRequest,
			"You must be enrolled in this course to review it", "NOT_ENROLLED")
	}

	var existing models.Review
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.Error(c, fiber.StatusBadRequest,
			"You have already reviewed this course", "DUPLICATE_REVIEW")
	}

	review := models.Review{
		UserID:   userID,
		CourseID: courseID,
		Rating:   *reqData.Rating,
	}
	if reqData.Comment != nil {
		review.Comment = strings.TrimSpace(*reqData.Comment)
	}

	if err := db.Create(&review).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusCreated, withReviewDisplayFields(review))
}

func UpdateReview(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	reqData, ok := c.Locals("validatedReviewUpdate").(*learningValidator.ReviewBody)
	if !ok {
		return middleware.Error(c, fiber.StatusBadRequest, "Invalid request data", "INVALID_BODY")
	}

	var review models.Review
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&review).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Review not found", "")
	}

	if reqData.Rating != nil {
		review.Rating = *reqData.Rating
	}
	if reqData.Comment != nil {
		review.Comment = strings.TrimSpace(*reqData.Comment)
	}

	if err := db.Save(&review).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, review)
}

func DeleteReview(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)
	id := c.Locals("id").(uint)

	var review models.Review
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&review).Error; err != nil {
		return middleware.Error(c, fiber.StatusNotFound, "Review not found", "")
	}

	if err := db.Delete(&review).Error; err != nil {
		return middleware.Internal(c, err)
	}
	return middleware.JSON(c, fiber.StatusOK, fiber.Map{
		"message": "Review deleted successfully",
		"review":  review,
	})
}
