package models

import "time"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// Profile is auto-created with RoleStudent on first access.
// TotalStudents and TotalCourses are denormalized; the stats reconciler
// re-syncs them from enrollments and courses.
type Profile struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"uniqueIndex;not null"`
	Role          string    `json:"role" gorm:"default:'student'"`
	Bio           string    `json:"bio" gorm:"type:text;default:''"`
	Website       string    `json:"website" gorm:"default:''"`
	TotalStudents int       `json:"totalStudents" gorm:"default:0"`
	TotalCourses  int       `json:"totalCourses" gorm:"default:0"`
	CreatedAt     time.Time `json:"createdAt"`
}
