package utils

import (
	"log"
	"time"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[STATS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileCourseStats recomputes the denormalized counters on courses
// from their source rows. Concurrent writes can leave the stored values
// slightly stale between runs; dashboards recompute from source anyway,
// so the stored counters only need eventual accuracy.
func ReconcileCourseStats() {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		logScheduler("Error fetching courses: " + err.Error())
		return
	}

	for _, course := range courses {
		var studentsCount int64
		db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&studentsCount)

		var ratingRow struct {
			Avg   float64
			Total int64
		}
		db.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as total").
			Where("course_id = ?", course.ID).
			Scan(&ratingRow)

		db.Model(&models.Course{}).Where("id = ?", course.ID).Updates(map[string]interface{}{
			"students_count": studentsCount,
			"rating":         ratingRow.Avg,
			"total_ratings":  ratingRow.Total,
		})
	}

	logScheduler("Course counters reconciled")
}

// ReconcileInstructorStats refreshes per-instructor totals on profiles.
func ReconcileInstructorStats() {
	db := database.Database.Db

	var profiles []models.Profile
	if err := db.Where("role = ?", models.RoleInstructor).Find(&profiles).Error; err != nil {
		logScheduler("Error fetching instructor profiles: " + err.Error())
		return
	}

	for _, profile := range profiles {
		var totalCourses int64
		db.Model(&models.Course{}).Where("instructor_id = ?", profile.UserID).Count(&totalCourses)

		var totalStudents int64
		db.Model(&models.Enrollment{}).
			Joins("JOIN courses ON courses.id = enrollments.course_id").
			Where("courses.instructor_id = ?", profile.UserID).
			Distinct("enrollments.user_id").
			Count(&totalStudents)

		db.Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
			"total_courses":  totalCourses,
			"total_students": totalStudents,
		})
	}

	logScheduler("Instructor totals reconciled")
}

// InitializeStatsScheduler starts the periodic counter reconciliation.
func InitializeStatsScheduler() *cron.Cron {
	logScheduler("Initializing stats scheduler...")

	c := cron.New()
	spec := config.AppConfig.ReconcileCron
	if spec == "" {
		spec = "@hourly"
	}

	if _, err := c.AddFunc(spec, func() {
		ReconcileCourseStats()
		ReconcileInstructorStats()
	}); err != nil {
		logScheduler("Invalid reconcile schedule '" + spec + "': " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Stats scheduler started with schedule " + spec)
	return c
}
