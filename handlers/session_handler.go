package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/krishvarma/tutor_connect/database"
	"github.com/krishvarma/tutor_connect/middleware"
	"github.com/krishvarma/tutor_connect/models"
	"gorm.io/gorm"
)

type SessionFeedbackRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}

// applyFeedback folds a feedback submission into a session record. With no
// existing session it builds a fresh one: ended_at set to now, started_at
// left unset. With an existing session only the rating and feedback change;
// timestamps stay untouched. The flag reports whether a create is needed.
func applyFeedback(existing *models.Session, bookingID uuid.UUID, rating int, feedback string, now time.Time) (models.Session, bool) {
	if existing != nil {
		updated := *existing
		updated.StudentRating = &rating
		updated.StudentFeedback = &feedback
		return updated, false
	}
	return models.Session{
		BookingID:       bookingID,
		EndedAt:         &now,
		StudentRating:   &rating,
		StudentFeedback: &feedback,
	}, true
}

// SubmitSessionFeedback records a student's rating for a booking. A session
// may not exist yet for the booking: feedback on a finished class is often
// the first event that touches the sessions table. If one exists its rating
// and feedback are updated in place with timestamps untouched; otherwise a
// session is created with ended_at set to now and started_at left unset.
// Either way exactly one write goes out. The unique index on
// sessions.booking_id rejects a concurrent double create.
func SubmitSessionFeedback(c *fiber.Ctx) error {
	studentID, err := middleware.AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	bookingID := c.Params("bookingId")

	var req SessionFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var session models.Session
	var created bool
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			return errors.New("booking not found")
		}
		if booking.StudentID != studentID {
			return errors.New("you are not the student for this booking")
		}

		var existing *models.Session
		var found models.Session
		err := tx.Where("booking_id = ?", booking.ID).First(&found).Error
		if err == nil {
			existing = &found
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		session, created = applyFeedback(existing, booking.ID, req.Rating, req.Feedback, time.Now())
		if created {
			return tx.Create(&session).Error
		}
		return tx.Model(&session).
			Select("student_rating", "student_feedback").
			Updates(&session).Error
	})

	if err != nil {
		switch err.Error() {
		case "booking not found":
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case "you are not the student for this booking":
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit feedback"})
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(session)
	}
	return c.JSON(session)
}
