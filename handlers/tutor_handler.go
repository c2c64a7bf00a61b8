package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/krishvarma/tutor_connect/configs"
	"github.com/krishvarma/tutor_connect/database"
	"github.com/krishvarma/tutor_connect/middleware"
	"github.com/krishvarma/tutor_connect/models"
)

const (
	minHourlyRate      = 50
	maxHourlyRate      = 1000
	maxExperienceYears = 50

	defaultCommissionRate = 0.15

	tutorDirectoryTTL = 30 * time.Second
)

type UpdateTutorProfileRequest struct {
	Bio             string                      `json:"bio"`
	Education       string                      `json:"education"`
	ExperienceYears int                         `json:"experience_years"`
	HourlyRate      int                         `json:"hourly_rate" validate:"required"`
	Subjects        []string                    `json:"subjects"`
	AvailableSlots  models.AvailabilitySlotList `json:"available_slots"`
}

type TutorProfileResponse struct {
	models.TutorProfile
	TakeHomeRate int `json:"take_home_rate"`
}

func commissionRate() float64 {
	rate, err := strconv.ParseFloat(config.Config("PLATFORM_COMMISSION_RATE"), 64)
	if err != nil || rate < 0 || rate >= 1 {
		return defaultCommissionRate
	}
	return rate
}

// takeHomeRate is what the tutor keeps per hour after the platform fee,
// e.g. 300 at a 15% fee pays out 255.
func takeHomeRate(hourlyRate int, commission float64) int {
	return int(math.Round(float64(hourlyRate) * (1 - commission)))
}

// normalizeSubjects trims every entry, drops empties and collapses exact
// duplicates while keeping first-seen order.
func normalizeSubjects(subjects []string) models.SubjectList {
	out := models.SubjectList{}
	seen := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	return out
}

// validateSlots checks each slot's time range. Overlap between slots is not
// checked; the editor accepts overlapping windows.
func validateSlots(slots models.AvailabilitySlotList) error {
	for _, slot := range slots {
		if slot.Day == "" {
			return errors.New("availability slot is missing a day")
		}
		if slot.Start >= slot.End {
			return errors.New("slot start time must be before end time")
		}
	}
	return nil
}

func GetMyTutorProfile(c *fiber.Ctx) error {
	userID, err := middleware.AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var profile models.TutorProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor profile not found"})
	}

	return c.JSON(TutorProfileResponse{
		TutorProfile: profile,
		TakeHomeRate: takeHomeRate(profile.HourlyRate, commissionRate()),
	})
}

// UpdateMyTutorProfile replaces the editable fields in one save. All
// validation runs before any write; a bad slot rejects the whole request
// and leaves the stored profile untouched.
func UpdateMyTutorProfile(c *fiber.Ctx) error {
	userID, err := middleware.AuthenticatedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req UpdateTutorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.HourlyRate < minHourlyRate || req.HourlyRate > maxHourlyRate {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Hourly rate must be between 50 and 1000"})
	}
	if req.ExperienceYears < 0 || req.ExperienceYears > maxExperienceYears {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Experience years must be between 0 and 50"})
	}
	if err := validateSlots(req.AvailableSlots); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var profile models.TutorProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor profile not found"})
	}

	slots := req.AvailableSlots
	if slots == nil {
		slots = models.AvailabilitySlotList{}
	}

	updates := map[string]interface{}{
		"bio":              req.Bio,
		"education":        req.Education,
		"experience_years": req.ExperienceYears,
		"hourly_rate":      req.HourlyRate,
		"subjects":         normalizeSubjects(req.Subjects),
		"available_slots":  slots,
	}
	if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save your profile"})
	}

	database.CacheInvalidate(c.Context(), database.TutorDirectoryKey)

	return c.JSON(TutorProfileResponse{
		TutorProfile: profile,
		TakeHomeRate: takeHomeRate(profile.HourlyRate, commissionRate()),
	})
}

type PublicTutor struct {
	UserID          string                      `json:"user_id"`
	FullName        string                      `json:"full_name"`
	Bio             *string                     `json:"bio"`
	Education       *string                     `json:"education"`
	ExperienceYears int                         `json:"experience_years"`
	HourlyRate      int                         `json:"hourly_rate"`
	Subjects        models.SubjectList          `json:"subjects"`
	AvailableSlots  models.AvailabilitySlotList `json:"available_slots"`
	Rating          float32                     `json:"rating"`
	TotalSessions   int                         `json:"total_sessions"`
}

// ListTutors serves the public directory of verified tutors. The rendered
// payload is cached briefly in Redis; a profile save invalidates it. When
// Redis is down the handler reads straight from the database.
func ListTutors(c *fiber.Ctx) error {
	if cached, ok := database.CacheGet(c.Context(), database.TutorDirectoryKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	var profiles []models.TutorProfile
	if err := database.DB.Preload("User").Where("is_verified = ?", true).Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load tutors"})
	}

	tutors := make([]PublicTutor, 0, len(profiles))
	for _, p := range profiles {
		tutors = append(tutors, publicTutor(p))
	}

	if payload, err := json.Marshal(tutors); err == nil {
		database.CacheSet(c.Context(), database.TutorDirectoryKey, string(payload), tutorDirectoryTTL)
	}

	return c.JSON(tutors)
}

func GetTutorProfile(c *fiber.Ctx) error {
	tutorID := c.Params("tutorId")

	var profile models.TutorProfile
	if err := database.DB.Preload("User").
		First(&profile, "user_id = ? AND is_verified = ?", tutorID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Verified tutor not found"})
	}

	return c.JSON(publicTutor(profile))
}

func publicTutor(p models.TutorProfile) PublicTutor {
	return PublicTutor{
		UserID:          p.UserID.String(),
		FullName:        p.User.FullName,
		Bio:             p.Bio,
		Education:       p.Education,
		ExperienceYears: p.ExperienceYears,
		HourlyRate:      p.HourlyRate,
		Subjects:        p.Subjects,
		AvailableSlots:  p.AvailableSlots,
		Rating:          p.Rating,
		TotalSessions:   p.TotalSessions,
	}
}
