package models

import "time"

// Certificate is an immutable record issued once per (user, course)
// when the enrollment reaches 100% progress.
type Certificate struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"userId" gorm:"uniqueIndex:idx_certificate_user_course;not null"`
	CourseID       uint      `json:"courseId" gorm:"uniqueIndex:idx_certificate_user_course;not null"`
	IssuedDate     time.Time `json:"issuedDate" gorm:"not null"`
	CertificateURL string    `json:"certificateUrl" gorm:"default:''"`
	CreatedAt      time.Time `json:"createdAt"`

	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
