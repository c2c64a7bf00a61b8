package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishvarma/tutor_connect/handlers"
	"github.com/krishvarma/tutor_connect/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected(), middleware.StudentRequired())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("/:bookingId/feedback", handlers.SubmitSessionFeedback)

	tutorBooking := api.Group("/tutor/bookings", middleware.Protected(), middleware.TutorRequired())
	tutorBooking.Get("", handlers.GetMyTutorBookings)
}
