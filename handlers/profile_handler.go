package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishvarma/tutor_connect/database"
	"github.com/krishvarma/tutor_connect/middleware"
	"github.com/krishvarma/tutor_connect/models"
)

type UpdateProfileRequest struct {
	FullName          *string `json:"full_name"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

func GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		name := *req.FullName
		if len(name) < 2 || len(name) > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name must be between 2 and 100 characters"})
		}
		user.FullName = name
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(user)
}
