package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// UserRole maps a user to its single dashboard role. Access checks read this
// table directly rather than trusting the role baked into a token.
type UserRole struct {
	UserID uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	Role   string    `gorm:"size:20;not null" json:"role"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
