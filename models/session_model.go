package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is created lazily: either by an external session-start action or on
// the first feedback submission for its booking. The unique index on
// BookingID enforces at most one session per booking, which also backstops
// the read-then-create path in the feedback handler.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`

	StartedAt *time.Time `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`

	StudentRating   *int    `json:"student_rating"`
	StudentFeedback *string `gorm:"type:text" json:"student_feedback"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
