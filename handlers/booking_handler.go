package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/krishvarma/tutor_connect/database"
	"github.com/krishvarma/tutor_connect/middleware"
	"github.com/krishvarma/tutor_connect/models"
)

// counterpart is the name/contact pair shown next to a booking: the tutor on
// the student dashboard, the student on the tutor dashboard.
type counterpart struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type BookingView struct {
	models.Booking
	Counterpart counterpart     `json:"counterpart"`
	Session     *models.Session `json:"session,omitempty"`
}

type BookingListResponse struct {
	Upcoming     []BookingView `json:"upcoming"`
	Past         []BookingView `json:"past"`
	ReviewsGiven int           `json:"reviews_given"`
}

// isUpcoming and isPast implement the dashboard split. Status wins over
// clock time: a completed booking is past even when its scheduled time has
// not elapsed yet, which keeps the two lists disjoint.
func isUpcoming(b models.Booking, now time.Time) bool {
	return b.ScheduledAt.After(now) &&
		b.Status != models.BookingCancelled &&
		b.Status != models.BookingCompleted
}

func isPast(b models.Booking, now time.Time) bool {
	return b.Status == models.BookingCompleted || !b.ScheduledAt.After(now)
}

func classifyBookings(views []BookingView, now time.Time) (upcoming, past []BookingView) {
	upcoming = []BookingView{}
	past = []BookingView{}
	for _, v := range views {
		switch {
		case isUpcoming(v.Booking, now):
			upcoming = append(upcoming, v)
		case isPast(v.Booking, now):
			past = append(past, v)
		}
	}
	return upcoming, past
}

// resolveCounterparts issues one batched lookup for the distinct set of ids
// referenced by the fetched bookings instead of a query per booking.
func resolveCounterparts(ids []uuid.UUID) (map[uuid.UUID]counterpart, error) {
	resolved := make(map[uuid.UUID]counterpart, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	var users []models.User
	if err := database.DB.Select("id", "full_name", "email").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		resolved[u.ID] = counterpart{FullName: u.FullName, Email: u.Email}
	}
	return resolved, nil
}

func loadSessions(bookingIDs []uuid.UUID) (map[uuid.UUID]models.Session, error) {
	byBooking := make(map[uuid.UUID]models.Session, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return byBooking, nil
	}

	var sessions []models.Session
	if err := database.DB.Where("booking_id IN ?", bookingIDs).Find(&sessions).Error; err != nil {
		return nil, err
	}
	for _, s := range sessions {
		byBooking[s.BookingID] = s
	}
	return byBooking, nil
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// buildBookingViews joins each booking with its resolved counterpart and
// session. A booking whose counterpart cannot be resolved still renders,
// under a generic label. The second return value counts sessions that carry
// a rating, i.e. reviews the caller has given.
func buildBookingViews(
	bookings []models.Booking,
	resolved map[uuid.UUID]counterpart,
	sessions map[uuid.UUID]models.Session,
	counterpartLabel string,
	counterpartID func(models.Booking) uuid.UUID,
) ([]BookingView, int) {
	views := make([]BookingView, 0, len(bookings))
	reviewsGiven := 0
	for _, b := range bookings {
		view := BookingView{Booking: b}

		if cp, ok := resolved[counterpartID(b)]; ok {
			view.Counterpart = cp
		} else {
			view.Counterpart = counterpart{FullName: counterpartLabel}
		}

		if s, ok := sessions[b.ID]; ok {
			session := s
			view.Session = &session
			if s.StudentRating != nil {
				reviewsGiven++
			}
		}
		views = append(views, view)
	}
	return views, reviewsGiven
}

func listBookings(c *fiber.Ctx, ownerColumn, counterpartLabel string, counterpartID func(models.Booking) uuid.UUID) error {
	userID, err := middleware.AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var bookings []models.Booking
	if err := database.DB.
		Where(ownerColumn+" = ?", userID).
		Order("scheduled_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load your bookings"})
	}

	counterpartIDs := make([]uuid.UUID, 0, len(bookings))
	bookingIDs := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		counterpartIDs = append(counterpartIDs, counterpartID(b))
		bookingIDs = append(bookingIDs, b.ID)
	}

	resolved, err := resolveCounterparts(distinct(counterpartIDs))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load your bookings"})
	}

	sessions, err := loadSessions(bookingIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load your bookings"})
	}

	views, reviewsGiven := buildBookingViews(bookings, resolved, sessions, counterpartLabel, counterpartID)

	upcoming, past := classifyBookings(views, time.Now())
	return c.JSON(BookingListResponse{
		Upcoming:     upcoming,
		Past:         past,
		ReviewsGiven: reviewsGiven,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	return listBookings(c, "student_id", "Tutor", func(b models.Booking) uuid.UUID { return b.TutorID })
}

func GetMyTutorBookings(c *fiber.Ctx) error {
	return listBookings(c, "tutor_id", "Student", func(b models.Booking) uuid.UUID { return b.StudentID })
}
