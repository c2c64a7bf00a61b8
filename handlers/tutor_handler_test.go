package handlers

import (
	"testing"

	"github.com/krishvarma/tutor_connect/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSubjects(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want models.SubjectList
	}{
		{"dedupes exact matches", []string{"Math", "Physics", "Math"}, models.SubjectList{"Math", "Physics"}},
		{"trims and drops empties", []string{"  Math ", "", "   "}, models.SubjectList{"Math"}},
		{"case sensitive", []string{"math", "Math"}, models.SubjectList{"math", "Math"}},
		{"nil input", nil, models.SubjectList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSubjects(tt.in))
		})
	}
}

func TestValidateSlots(t *testing.T) {
	valid := models.AvailabilitySlotList{
		{Day: "Monday", Start: "09:00", End: "10:00"},
		{Day: "Friday", Start: "18:00", End: "20:30"},
	}
	assert.NoError(t, validateSlots(valid))
	assert.NoError(t, validateSlots(nil))

	reversed := models.AvailabilitySlotList{{Day: "Monday", Start: "10:00", End: "09:00"}}
	assert.Error(t, validateSlots(reversed))

	zeroWidth := models.AvailabilitySlotList{{Day: "Monday", Start: "09:00", End: "09:00"}}
	assert.Error(t, validateSlots(zeroWidth))

	missingDay := models.AvailabilitySlotList{{Start: "09:00", End: "10:00"}}
	assert.Error(t, validateSlots(missingDay))

	// Overlapping windows are accepted.
	overlapping := models.AvailabilitySlotList{
		{Day: "Monday", Start: "09:00", End: "11:00"},
		{Day: "Monday", Start: "10:00", End: "12:00"},
	}
	assert.NoError(t, validateSlots(overlapping))
}

func TestTakeHomeRate(t *testing.T) {
	assert.Equal(t, 255, takeHomeRate(300, 0.15))
	assert.Equal(t, 170, takeHomeRate(200, 0.15))
	assert.Equal(t, 43, takeHomeRate(50, 0.15))
	assert.Equal(t, 850, takeHomeRate(1000, 0.15))
	assert.Equal(t, 300, takeHomeRate(300, 0))
}
