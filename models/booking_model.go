package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking rows are never deleted, only status-transitioned.
type Booking struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID       uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	TutorID         uuid.UUID `gorm:"type:uuid;not null;index" json:"tutor_id"`
	Subject         string    `gorm:"size:100;not null" json:"subject"`
	ScheduledAt     time.Time `gorm:"not null" json:"scheduled_at"`
	DurationMinutes int       `gorm:"not null;default:60" json:"duration_minutes"`
	Status          string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes           *string   `gorm:"type:text" json:"notes"`

	Student User `gorm:"foreignkey:StudentID" json:"-"`
	Tutor   User `gorm:"foreignkey:TutorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
