package controllers

import (
	"sort"
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// CourseSummary is one row of the instructor's course table. Revenue is
// derived (enrollment count × price), not ledger-tracked.
type CourseSummary struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	StudentsCount   int       `json:"studentsCount"`
	Rating          float64   `json:"rating"`
	TotalRatings    int       `json:"totalRatings"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"createdAt"`
	CategoryName    string    `json:"categoryName"`
	EnrollmentCount int64     `json:"enrollmentCount"`
	Revenue         float64   `json:"revenue"`
}

type enrollmentSummary struct {
	ID         uint      `json:"id"`
	EnrolledAt time.Time `json:"enrolledAt"`
	Progress   int       `json:"progress"`
	Course     fiber.Map `json:"course"`
	Student    fiber.Map `json:"student"`
}

type reviewSummary struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	Course    fiber.Map `json:"course"`
	Student   fiber.Map `json:"student"`
}

type monthlyStat struct {
	Month           string  `json:"month"`
	EnrollmentCount int64   `json:"enrollmentCount"`
	Revenue         float64 `json:"revenue"`
}

// GetInstructorDashboard aggregates the instructor's read-only summary
// view. Everything here is recomputed from source rows; the stored
// denormalized counters are ignored on purpose.
func GetInstructorDashboard(c *fiber.Ctx) error {
	db := database.Database.Db
	userID := c.Locals("userId").(uint)

	var courses []models.Course
	if err := db.Where("instructor_id = ?", userID).Find(&courses).Error; err != nil {
		return middleware.Internal(c, err)
	}

	courseIDs := make([]uint, len(courses))
	for i, course := range courses {
		courseIDs[i] = course.ID
	}

	counts := make(map[uint]int64)
	if len(courseIDs) > 0 {
		var rows []struct {
			CourseID uint
			Total    int64
		}
		if err := db.Model(&models.Enrollment{}).
			Select("course_id, COUNT(*) as total").
			Where("course_id IN ?", courseIDs).
			Group("course_id").Scan(&rows).Error; err != nil {
			return middleware.Internal(c, err)
		}
		for _, row := range rows {
			counts[row.CourseID] = row.Total
		}
	}

	summaries := make([]CourseSummary, len(courses))
	var totalRevenue float64
	for i, course := range courses {
		summary := CourseSummary{
			ID:              course.ID,
			Title:           course.Title,
			Description:     course.Description,
			Price:           course.Price,
			StudentsCount:   course.StudentsCount,
			Rating:          course.Rating,
			TotalRatings:    course.TotalRatings,
			Published:       course.Published,
			CreatedAt:       course.CreatedAt,
			EnrollmentCount: counts[course.ID],
			Revenue:         float64(counts[course.ID]) * course.Price,
		}
		if course.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *course.CategoryID).Error; err == nil {
				summary.CategoryName = category.Name
			}
		}
		totalRevenue += summary.Revenue
		summaries[i] = summary
	}

	var totalStudents int64
	if len(courseIDs) > 0 {
		if err := db.Model(&models.Enrollment{}).Where("course_id IN ?", courseIDs).
			Distinct("user_id").Count(&totalStudents).Error; err != nil {
			return middleware.Internal(c, err)
		}
	}

	recentEnrollments := []enrollmentSummary{}
	if len(courseIDs) > 0 {
		var enrollments []models.Enrollment
		if err := db.Where("course_id IN ?", courseIDs).
			Order("created_at desc").Limit(10).Find(&enrollments).Error; err != nil {
			return middleware.Internal(c, err)
		}
		for _, enrollment := range enrollments {
			var student models.User
			db.First(&student, enrollment.UserID)
			var course models.Course
			db.First(&course, enrollment.CourseID)
			recentEnrollments = append(recentEnrollments, enrollmentSummary{
				ID:         enrollment.ID,
				EnrolledAt: enrollment.CreatedAt,
				Progress:   enrollment.Progress,
				Course:     fiber.Map{"id": course.ID, "title": course.Title},
				Student:    fiber.Map{"name": student.Name, "email": student.Email, "image": student.Image},
			})
		}
	}

	// Top 5 published courses by (enrollment count desc, rating desc).
	topCourses := []CourseSummary{}
	for _, summary := range summaries {
		if summary.Published {
			topCourses = append(topCourses, summary)
		}
	}
	sort.SliceStable(topCourses, func(i, j int) bool {
		if topCourses[i].EnrollmentCount != topCourses[j].EnrollmentCount {
			return topCourses[i].EnrollmentCount > topCourses[j].EnrollmentCount
		}
		return topCourses[i].Rating > topCourses[j].Rating
	})
	if len(topCourses) > 5 {
		topCourses = topCourses[:5]
	}

	monthlyStats, err := trailingMonthlyStats(userID)
	if err != nil {
		return middleware.Internal(c, err)
	}

	recentReviews := []reviewSummary{}
	if len(courseIDs) > 0 {
		var reviews []models.Review
		if err := db.Where("course_id IN ?", courseIDs).
			Order("created_at desc").Limit(10).Find(&reviews).Error; err != nil {
			return middleware.Internal(c, err)
		}
		for _, review := range reviews {
			var student models.User
			db.First(&student, review.UserID)
			var course models.Course
			db.First(&course, review.CourseID)
			recentReviews = append(recentReviews, reviewSummary{
				ID:        review.ID,
				Rating:    review.Rating,
				Comment:   review.Comment,
				CreatedAt: review.CreatedAt,
				Course:    fiber.Map{"id": course.ID, "title": course.Title},
				Student:   fiber.Map{"name": student.Name, "image": student.Image},
			})
		}
	}

	return middleware.JSON(c, fiber.StatusOK, fiber.Map{
		"courses":           summaries,
		"totalStudents":     totalStudents,
		"totalRevenue":      totalRevenue,
		"recentEnrollments": recentEnrollments,
		"topCourses":        topCourses,
		"monthlyStats":      monthlyStats,
		"reviews":           recentReviews,
	})
}

// trailingMonthlyStats builds the 12-month enrollment/revenue series
// with zero-filled gaps. Aggregation happens in Go so the series is
// identical across the supported SQL dialects.
func trailingMonthlyStats(instructorID uint) ([]monthlyStat, error) {
	db := database.Database.Db

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -11, 0)

	var rows []struct {
		CreatedAt time.Time
		Price     float64
	}
	err := db.Model(&models.Enrollment{}).
		Select("enrollments.created_at, courses.price").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.instructor_id = ? AND enrollments.created_at >= ?", instructorID, start).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	type bucket struct {
		count   int64
		revenue float64
	}
	buckets := make(map[string]bucket)
	for _, row := range rows {
		key := row.CreatedAt.Format("2006-01")
		b := buckets[key]
		b.count++
		b.revenue += row.Price
		buckets[key] = b
	}

	// Advance from the first-of-month anchor so day-of-month
	// normalization cannot skip or duplicate months.
	stats := make([]monthlyStat, 0, 12)
	for i := 0; i < 12; i++ {
		key := start.AddDate(0, i, 0).Format("2006-01")
		stats = append(stats, monthlyStat{
			Month:           key,
			EnrollmentCount: buckets[key].count,
			Revenue:         buckets[key].revenue,
		})
	}
	return stats, nil
}
