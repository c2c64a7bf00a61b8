package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/krishvarma/tutor_connect/database"
	"github.com/krishvarma/tutor_connect/models"
	"github.com/krishvarma/tutor_connect/notifications"
)

// SendSessionReminders runs every 5 minutes. The window is one cron interval
// wide so a booking is reminded exactly once.
func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingBookings []models.Booking

	err := database.DB.
		Preload("Student").
		Preload("Tutor").
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", models.BookingConfirmed, lowerBound, upperBound).
		Find(&upcomingBookings).Error

	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your %s session is scheduled to start in one hour at %s.</p>",
			booking.Subject,
			booking.ScheduledAt.Format(time.Kitchen),
		)

		go notifications.SendEmail(booking.Student.FullName, booking.Student.Email, emailSubject, emailBody)
		go notifications.SendEmail(booking.Tutor.FullName, booking.Tutor.Email, emailSubject, emailBody)
	}
}
