package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jkleiven/repwise/internal/models"
	"github.com/jkleiven/repwise/internal/services"
)

func (handler *Handler) GetExercises(c *fiber.Ctx) error {
	exercises, err := handler.exerciseService.ListExercises()
	if err != nil {
		log.Printf("list exercises: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch exercises")
	}
	return c.JSON(exercises)
}

func (handler *Handler) CreateExercise(c *fiber.Ctx) error {
	payload := exercisePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if fieldErrors := validateExercisePayload(payload); len(fieldErrors) > 0 {
		return apiValidationError(c, fieldErrors)
	}

	secondaryMuscles := payload.SecondaryMuscles
	if secondaryMuscles == nil {
		secondaryMuscles = []string{}
	}
	exercise := models.Exercise{
		Name:             strings.TrimSpace(payload.Name),
		PrimaryMuscle:    payload.PrimaryMuscle,
		SecondaryMuscles: secondaryMuscles,
	}
	if err := handler.exerciseService.CreateCustomExercise(&exercise); err != nil {
		if errors.Is(err, services.ErrExerciseNameTaken) {
			return apiError(c, fiber.StatusConflict, "exercise name already exists")
		}
		log.Printf("create exercise %q: %v", exercise.Name, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create exercise")
	}

	return c.Status(fiber.StatusCreated).JSON(exercise)
}
