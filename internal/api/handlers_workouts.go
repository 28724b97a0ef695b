package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jkleiven/repwise/internal/services"
)

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := createWorkoutPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	date, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	workout, err := handler.workoutService.CreateWorkout(user.ID, date, workoutInputFromPayload(payload))
	if err != nil {
		var fieldErrors services.ValidationErrors
		if errors.As(err, &fieldErrors) {
			return apiValidationError(c, fieldErrors)
		}
		if errors.Is(err, services.ErrExerciseNotFound) {
			return apiError(c, fiber.StatusBadRequest, "unknown exercise_id")
		}
		log.Printf("create workout for user %d: %v", user.ID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create workout")
	}

	return c.JSON(workout)
}

func (handler *Handler) GetWorkoutsByDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rawDate := c.Query("date")
	if rawDate == "" {
		return handler.listWorkouts(c, user.ID)
	}

	day, err := parseDayParam(rawDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	workouts, err := handler.repositories.Workouts.ListByUserAndDayRange(user.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		log.Printf("list workouts for user %d on %s: %v", user.ID, rawDate, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch workouts")
	}
	return c.JSON(workouts)
}

func (handler *Handler) GetWorkouts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if c.Query("type") == "dates" {
		timestamps, err := handler.repositories.Workouts.ListCreatedAt(user.ID)
		if err != nil {
			log.Printf("list workout dates for user %d: %v", user.ID, err)
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch workout dates")
		}
		return c.JSON(timestamps)
	}

	return handler.listWorkouts(c, user.ID)
}

func (handler *Handler) listWorkouts(c *fiber.Ctx, userID uint) error {
	workouts, err := handler.repositories.Workouts.ListByUser(userID)
	if err != nil {
		log.Printf("list workouts for user %d: %v", userID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch workouts")
	}
	return c.JSON(workouts)
}
