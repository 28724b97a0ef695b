package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jkleiven/repwise/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.profileService.EnsureProfile(user)
	if err != nil {
		log.Printf("ensure profile for user %d: %v", user.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch profile")
	}

	return c.JSON(profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := profileUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if fieldErrors := validateProfileUpdatePayload(payload); len(fieldErrors) > 0 {
		return apiValidationError(c, fieldErrors)
	}

	profile, err := handler.profileService.UpdateProfile(user, services.ProfileUpdate{
		Name:        payload.Name,
		Unit:        payload.Unit,
		Weight:      payload.Weight,
		Height:      payload.Height,
		BodyFat:     payload.BodyFat,
		DateOfBirth: payload.DateOfBirth,
		Gender:      payload.Gender,
	})
	if err != nil {
		log.Printf("update profile for user %d: %v", user.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	return c.JSON(profile)
}
