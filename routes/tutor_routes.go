package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishvarma/tutor_connect/handlers"
	"github.com/krishvarma/tutor_connect/middleware"
)

func TutorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/tutors", handlers.ListTutors)
	api.Get("/tutors/:tutorId", handlers.GetTutorProfile)

	profile := api.Group("/tutor/profile", middleware.Protected(), middleware.TutorRequired())
	profile.Get("/me", handlers.GetMyTutorProfile)
	profile.Put("/me", handlers.UpdateMyTutorProfile)
}
