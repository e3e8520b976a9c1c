package models

import "time"

// Enrollment grants a user access to a course's lessons. The unique
// (user, course) index is the backstop against duplicate-insert races;
// the handler-level existence check is only a pre-check.
// Invariant: CompletedAt != nil iff Progress == 100.
type Enrollment struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"userId" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID     uint       `json:"courseId" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	Progress     int        `json:"progress" gorm:"default:0;check:progress >= 0 AND progress <= 100"`
	LastAccessed *time.Time `json:"lastAccessed"`
	CompletedAt  *time.Time `json:"completedAt"`
	CreatedAt    time.Time  `json:"enrolledAt"`

	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
