package models

import "time"

// Review requires a prior enrollment in the course; one per user per course.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_review_user_course;not null"`
	CourseID  uint      `json:"courseId" gorm:"uniqueIndex:idx_review_user_course;not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment" gorm:"type:text;default:''"`
	CreatedAt time.Time `json:"createdAt"`
}
