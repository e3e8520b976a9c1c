package models

import "time"

// User identities are owned by the external auth provider; this table
// mirrors the subset the marketplace needs for joins and display.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	EmailVerified bool      `json:"emailVerified" gorm:"default:false"`
	Image         string    `json:"image" gorm:"default:''"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
