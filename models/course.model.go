package models

import "time"

// Course is mutable only by the user referenced by InstructorID.
// StudentsCount, Rating and TotalRatings are denormalized read caches;
// dashboards recompute their own figures and the stats reconciler
// re-syncs the stored values.
type Course struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text;default:''"`
	InstructorID  uint      `json:"instructorId" gorm:"index;not null"`
	CategoryID    *uint     `json:"categoryId" gorm:"index"`
	Price         float64   `json:"price" gorm:"not null;check:price >= 0"`
	Duration      string    `json:"duration" gorm:"default:''"` // e.g. "40 hours"
	Image         string    `json:"image" gorm:"default:''"`
	StudentsCount int       `json:"studentsCount" gorm:"default:0"`
	Rating        float64   `json:"rating" gorm:"default:0"`
	TotalRatings  int       `json:"totalRatings" gorm:"default:0"`
	Published     bool      `json:"published" gorm:"default:false"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
