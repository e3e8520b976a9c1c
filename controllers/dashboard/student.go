package controllers

import (
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

type enrolledCourse struct {
	ID             uint       `json:"id"`
	Progress       int        `json:"progress"`
	EnrolledAt     time.Time  `json:"enrolledAt"`
	LastAccessed   *time.Time `json:"lastAccessed"`
	CompletedAt    *time.Time `json:"completedAt"`
	Course         fiber.Map  `json:"course"`
	CategoryName   string     `json:"categoryName"`
	InstructorName string     `json:"instructorName"`
}

type activityEntry struct {
	LessonID     uint       `json:"lessonId"`
	LessonTitle  string     `json:"lessonTitle"`
	CourseID     uint       `json:"courseId"`
	CourseTitle  string     `json:"courseTitle"`
	Completed    bool       `json:"completed"`
	LastPosition int        `json:"lastPosition"`
	CompletedAt  *time.Time `json:"completedAt"`
}

// GetStudentDashboard aggregates the student's learning overview:
// enrolled courses, recent lesson activity, certificates, summary
// stats and category-based recommendations.
func GetStudentDashboard(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).
		Order("last_accessed desc").Find(&enrollments).Error; err != nil {
		return middleware.Internal(c, err)
	}

	enrolled := make([]enrolledCourse, 0, len(enrollments))
	enrolledCourseIDs := make([]uint, 0, len(enrollments))
	categoryIDs := []uint{}
	completedCourses := 0
	progressSum := 0
	for _, enrollment := range enrollments {
		var course models.Course
		if err := db.First(&course, enrollment.CourseID).Error; err != nil {
			continue
		}
		entry := enrolledCourse{
			ID:           enrollment.ID,
			Progress:     enrollment.Progress,
			EnrolledAt:   enrollment.CreatedAt,
			LastAccessed: enrollment.LastAccessed,
			CompletedAt:  enrollment.CompletedAt,
			Course: fiber.Map{
				"id":       course.ID,
				"title":    course.Title,
				"image":    course.Image,
				"duration": course.Duration,
			},
		}
		if course.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *course.CategoryID).Error; err == nil {
				entry.CategoryName = category.Name
			}
			categoryIDs = append(categoryIDs, *course.CategoryID)
		}
		var instructor models.User
		if err := db.First(&instructor, course.InstructorID).Error; err == nil {
			entry.InstructorName = instructor.Name
		}
		enrolled = append(enrolled, entry)
		enrolledCourseIDs = append(enrolledCourseIDs, course.ID)
		if enrollment.CompletedAt != nil {
			completedCourses++
		}
		progressSum += enrollment.Progress
	}

	recentActivity := []activityEntry{}
	var progressRows []models.LessonProgress
	if err := db.Where("user_id = ?", userID).
		Order("completed_at desc").Limit(10).Find(&progressRows).Error; err != nil {
		return middleware.Internal(c, err)
	}
	for _, row := range progressRows {
		var lesson models.Lesson
		if err := db.First(&lesson, row.LessonID).Error; err != nil {
			continue
		}
		var course models.Course
		db.First(&course, lesson.CourseID)
		recentActivity = append(recentActivity, activityEntry{
			LessonID:     lesson.ID,
			LessonTitle:  lesson.Title,
			CourseID:     course.ID,
			CourseTitle:  course.Title,
			Completed:    row.Completed,
			LastPosition: row.LastPosition,
			CompletedAt:  row.CompletedAt,
		})
	}

	var certificates []models.Certificate
	if err := db.Preload("Course").Where("user_id = ?", userID).
		Order("issued_date desc").Find(&certificates).Error; err != nil {
		return middleware.Internal(c, err)
	}

	averageProgress := 0
	if len(enrollments) > 0 {
		averageProgress = progressSum / len(enrollments)
	}

	recommendations := []models.Course{}
	// No category history means no signal; the list stays empty rather
	// than falling back to a global popularity feed.
	if len(categoryIDs) > 0 {
		query := db.Where("published = ? AND category_id IN ?", true, categoryIDs)
		if len(enrolledCourseIDs) > 0 {
			query = query.Where("id NOT IN ?", enrolledCourseIDs)
		}
		if err := query.Order("rating desc, students_count desc").
			Limit(6).Find(&recommendations).Error; err != nil {
			return middleware.Internal(c, err)
		}
	}

	return middleware.JSON(c, fiber.StatusOK, fiber.Map{
		"enrolledCourses": enrolled,
		"recentActivity":  recentActivity,
		"certificates":    certificates,
		"stats": fiber.Map{
			"totalEnrollments":  len(enrollments),
			"completedCourses":  completedCourses,
			"averageProgress":   averageProgress,
			"totalCertificates": len(certificates),
		},
		"recommendations": recommendations,
	})
}
