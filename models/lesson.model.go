package models

import (
	"time"

	"gorm.io/datatypes"
)

// Lesson belongs to exactly one course, ordered by OrderIndex within a
// SectionTitle grouping. Resources holds optional external links shown
// under the player.
type Lesson struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	CourseID     uint           `json:"courseId" gorm:"index;not null"`
	SectionTitle string         `json:"sectionTitle" gorm:"not null"`
	Title        string         `json:"title" gorm:"not null"`
	Duration     string         `json:"duration" gorm:"default:''"` // e.g. "15:30"
	VideoURL     string         `json:"videoUrl" gorm:"default:''"`
	Transcript   string         `json:"transcript" gorm:"type:text;default:''"`
	OrderIndex   int            `json:"orderIndex" gorm:"not null"`
	Locked       bool           `json:"locked" gorm:"default:false"`
	Resources    datatypes.JSON `json:"resources"`
	CreatedAt    time.Time      `json:"createdAt"`
}
