package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a weekly recurring window, e.g. {Monday 09:00 17:00}.
// Times are "HH:MM" strings compared lexically.
type AvailabilitySlot struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilitySlotList []AvailabilitySlot

type SubjectList []string

// TutorProfile is edited wholesale: the profile editor replaces bio,
// education, experience, rate, subjects and slots in one save. Subjects and
// slots live in JSONB columns so the replace stays a single row update.
type TutorProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	Bio             *string              `gorm:"type:text" json:"bio"`
	Education       *string              `gorm:"size:255" json:"education"`
	ExperienceYears int                  `gorm:"not null;default:0" json:"experience_years"`
	HourlyRate      int                  `gorm:"not null;default:200" json:"hourly_rate"`
	Subjects        SubjectList          `gorm:"type:jsonb;default:'[]'" json:"subjects"`
	AvailableSlots  AvailabilitySlotList `gorm:"type:jsonb;default:'[]'" json:"available_slots"`

	IsVerified    bool    `gorm:"default:false" json:"is_verified"`
	Rating        float32 `gorm:"default:0" json:"rating"`
	TotalSessions int     `gorm:"default:0" json:"total_sessions"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (s SubjectList) Value() (driver.Value, error) {
	if s == nil {
		s = SubjectList{}
	}
	return json.Marshal(s)
}

func (s *SubjectList) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func (l AvailabilitySlotList) Value() (driver.Value, error) {
	if l == nil {
		l = AvailabilitySlotList{}
	}
	return json.Marshal(l)
}

func (l *AvailabilitySlotList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported type for jsonb column")
	}
}
