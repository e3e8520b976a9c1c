package models

import "time"

// LessonProgress is upserted on the unique (user, lesson) pair.
// Invariant: CompletedAt != nil iff Completed is true.
type LessonProgress struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"userId" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	LessonID     uint       `json:"lessonId" gorm:"uniqueIndex:idx_progress_user_lesson;not null"`
	Completed    bool       `json:"completed" gorm:"default:false"`
	LastPosition int        `json:"lastPosition" gorm:"default:0"` // video position in seconds
	CompletedAt  *time.Time `json:"completedAt"`
}
