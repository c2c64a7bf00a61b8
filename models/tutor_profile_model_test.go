package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A nil list must serialize as an empty JSON array, not null, so the jsonb
// column default stays consistent with what the editor writes.
func TestJSONBColumnsNeverNull(t *testing.T) {
	var subjects SubjectList
	val, err := subjects.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(val.([]byte)))

	var slots AvailabilitySlotList
	val, err = slots.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(val.([]byte)))
}

func TestAvailabilitySlotListScan(t *testing.T) {
	raw := `[{"day":"Monday","start":"09:00","end":"11:00"}]`

	var fromBytes AvailabilitySlotList
	assert.NoError(t, fromBytes.Scan([]byte(raw)))
	assert.Equal(t, AvailabilitySlotList{{Day: "Monday", Start: "09:00", End: "11:00"}}, fromBytes)

	var fromString AvailabilitySlotList
	assert.NoError(t, fromString.Scan(raw))
	assert.Equal(t, fromBytes, fromString)

	var fromNil AvailabilitySlotList
	assert.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	var bad AvailabilitySlotList
	assert.Error(t, bad.Scan(42))
}
