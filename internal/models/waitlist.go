package models

import "time"

// WaitlistEntry is a pre-launch signup. Email and StudentID are unique;
// the shape mirrors the persisted waitlist table.
type WaitlistEntry struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	Name           string    `json:"name"`
	StudentID      string    `gorm:"uniqueIndex;column:student_id" json:"student_id"`
	Phone          string    `json:"phone,omitempty"`
	GraduationYear int       `json:"graduation_year,omitempty"`
	Major          string    `json:"major,omitempty"`
	ReferralSource string    `json:"referral_source,omitempty"`
	Status         string    `gorm:"default:pending" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName implements the GORM tabler interface.
func (WaitlistEntry) TableName() string { return "waitlist" }

// WaitlistSignupRequest is the body for waitlist signups.
type WaitlistSignupRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	StudentID      string `json:"student_id" binding:"required"`
	Phone          string `json:"phone"`
	GraduationYear int    `json:"graduation_year"`
	Major          string `json:"major"`
	ReferralSource string `json:"referral_source"`
}
