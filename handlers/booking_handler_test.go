package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/krishvarma/tutor_connect/models"
	"github.com/stretchr/testify/assert"
)

func bookingAt(scheduledAt time.Time, status string) models.Booking {
	return models.Booking{
		ID:          uuid.New(),
		StudentID:   uuid.New(),
		TutorID:     uuid.New(),
		Subject:     "Math",
		ScheduledAt: scheduledAt,
		Status:      status,
	}
}

func TestClassifyBookings(t *testing.T) {
	now := time.Now()
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	tests := []struct {
		name         string
		booking      models.Booking
		wantUpcoming bool
		wantPast     bool
	}{
		{"future confirmed", bookingAt(future, models.BookingConfirmed), true, false},
		{"future pending", bookingAt(future, models.BookingPending), true, false},
		{"future cancelled", bookingAt(future, models.BookingCancelled), false, false},
		{"past confirmed", bookingAt(past, models.BookingConfirmed), false, true},
		{"past completed", bookingAt(past, models.BookingCompleted), false, true},
		{"past cancelled", bookingAt(past, models.BookingCancelled), false, true},
		// Status wins over clock time: already completed means past even
		// when the scheduled time has not elapsed.
		{"future completed", bookingAt(future, models.BookingCompleted), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upcoming, pastList := classifyBookings([]BookingView{{Booking: tt.booking}}, now)

			assert.Equal(t, tt.wantUpcoming, len(upcoming) == 1, "upcoming membership")
			assert.Equal(t, tt.wantPast, len(pastList) == 1, "past membership")
		})
	}
}

func TestClassifyBookingsListsAreDisjoint(t *testing.T) {
	now := time.Now()
	views := []BookingView{
		{Booking: bookingAt(now.Add(time.Hour), models.BookingConfirmed)},
		{Booking: bookingAt(now.Add(time.Hour), models.BookingCompleted)},
		{Booking: bookingAt(now.Add(-time.Hour), models.BookingCompleted)},
		{Booking: bookingAt(now.Add(-time.Hour), models.BookingPending)},
	}

	upcoming, past := classifyBookings(views, now)

	seen := map[uuid.UUID]bool{}
	for _, v := range upcoming {
		seen[v.ID] = true
	}
	for _, v := range past {
		assert.False(t, seen[v.ID], "booking %s appears in both lists", v.ID)
	}
	assert.Len(t, upcoming, 1)
	assert.Len(t, past, 3)
}

func TestClassifyBookingsOrderPreserved(t *testing.T) {
	now := time.Now()
	first := bookingAt(now.Add(72*time.Hour), models.BookingConfirmed)
	second := bookingAt(now.Add(24*time.Hour), models.BookingConfirmed)

	upcoming, _ := classifyBookings([]BookingView{{Booking: first}, {Booking: second}}, now)

	assert.Len(t, upcoming, 2)
	assert.Equal(t, first.ID, upcoming[0].ID)
	assert.Equal(t, second.ID, upcoming[1].ID)
}

func TestBuildBookingViews(t *testing.T) {
	now := time.Now()
	rated := bookingAt(now.Add(-48*time.Hour), models.BookingCompleted)
	unrated := bookingAt(now.Add(-24*time.Hour), models.BookingCompleted)
	orphaned := bookingAt(now.Add(24*time.Hour), models.BookingConfirmed)

	resolved := map[uuid.UUID]counterpart{
		rated.TutorID:   {FullName: "Meera Iyer", Email: "meera@example.com"},
		unrated.TutorID: {FullName: "Rahul Nair", Email: "rahul@example.com"},
		// orphaned.TutorID intentionally absent.
	}

	rating := 5
	sessions := map[uuid.UUID]models.Session{
		rated.ID:   {ID: uuid.New(), BookingID: rated.ID, StudentRating: &rating},
		unrated.ID: {ID: uuid.New(), BookingID: unrated.ID},
	}

	tutorID := func(b models.Booking) uuid.UUID { return b.TutorID }
	views, reviewsGiven := buildBookingViews(
		[]models.Booking{rated, unrated, orphaned}, resolved, sessions, "Tutor", tutorID)

	assert.Len(t, views, 3, "unresolvable counterpart must not drop the booking")

	byID := map[uuid.UUID]BookingView{}
	for _, v := range views {
		byID[v.ID] = v
	}

	assert.Equal(t, "Meera Iyer", byID[rated.ID].Counterpart.FullName)
	assert.Equal(t, "Tutor", byID[orphaned.ID].Counterpart.FullName)
	assert.Empty(t, byID[orphaned.ID].Counterpart.Email)

	assert.NotNil(t, byID[rated.ID].Session)
	assert.NotNil(t, byID[unrated.ID].Session)
	assert.Nil(t, byID[orphaned.ID].Session)

	// Only sessions carrying a rating count as reviews.
	assert.Equal(t, 1, reviewsGiven)
}

func TestBuildBookingViewsEmpty(t *testing.T) {
	views, reviewsGiven := buildBookingViews(nil, nil, nil, "Student",
		func(b models.Booking) uuid.UUID { return b.StudentID })

	assert.Empty(t, views)
	assert.NotNil(t, views)
	assert.Zero(t, reviewsGiven)
}

func TestDistinct(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids := distinct([]uuid.UUID{a, b, a, a, b})

	assert.Equal(t, []uuid.UUID{a, b}, ids)
	assert.Empty(t, distinct(nil))
}
