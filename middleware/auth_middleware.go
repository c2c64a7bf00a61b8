package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/krishvarma/tutor_connect/configs"
	"github.com/krishvarma/tutor_connect/database"
	"github.com/krishvarma/tutor_connect/models"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// AuthenticatedUserID extracts the caller's id from the verified token.
func AuthenticatedUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	idStr, _ := claims["user_id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return id, nil
}

// RoleRequired re-reads the caller's role row on every request. A missing
// row, a mismatched role and a lookup error are all treated the same way:
// access denied, no dashboard data loaded.
func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := AuthenticatedUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		var assigned models.UserRole
		if err := database.DB.Where("user_id = ?", userID).First(&assigned).Error; err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: " + role + " access required",
			})
		}
		if assigned.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: " + role + " access required",
			})
		}
		return c.Next()
	}
}

func StudentRequired() fiber.Handler {
	return RoleRequired(models.RoleStudent)
}

func TutorRequired() fiber.Handler {
	return RoleRequired(models.RoleTutor)
}
