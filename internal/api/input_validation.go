package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jkleiven/repwise/internal/models"
	"github.com/jkleiven/repwise/internal/services"
)

const dayParamLayout = "2006-01-02"

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	credentials.Password = strings.TrimSpace(credentials.Password)
	credentials.ConfirmPassword = strings.TrimSpace(credentials.ConfirmPassword)

	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return credentialsInput{}, errors.New("invalid email")
	}

	return credentials, nil
}

func parseDayParam(value string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, errors.New("empty date")
	}
	day, err := time.ParseInLocation(dayParamLayout, trimmed, location)
	if err != nil {
		return time.Time{}, err
	}
	return day, nil
}

func workoutInputFromPayload(payload createWorkoutPayload) []services.ExerciseSetsInput {
	exercises := make([]services.ExerciseSetsInput, 0, len(payload.Exercises))
	for _, exercise := range payload.Exercises {
		sets := make([]services.SetInput, 0, len(exercise.Sets))
		for _, set := range exercise.Sets {
			sets = append(sets, services.SetInput{Reps: set.Reps, Weight: set.Weight})
		}
		exercises = append(exercises, services.ExerciseSetsInput{
			ExerciseID: exercise.ExerciseID,
			Sets:       sets,
		})
	}
	return exercises
}

func validateExercisePayload(payload exercisePayload) services.ValidationErrors {
	fieldErrors := services.ValidationErrors{}

	name := strings.TrimSpace(payload.Name)
	if nameLength := len([]rune(name)); nameLength < 2 || nameLength > 100 {
		fieldErrors = append(fieldErrors, services.FieldError{Field: "name", Message: "name must be 2 to 100 characters"})
	}
	if !isValidMuscleGroup(payload.PrimaryMuscle) {
		fieldErrors = append(fieldErrors, services.FieldError{Field: "primary_muscle", Message: "unknown muscle group"})
	}
	for _, muscle := range payload.SecondaryMuscles {
		if !isValidMuscleGroup(muscle) {
			fieldErrors = append(fieldErrors, services.FieldError{Field: "secondary_muscles", Message: "unknown muscle group"})
			break
		}
	}
	return fieldErrors
}

func validateProfileUpdatePayload(payload profileUpdatePayload) services.ValidationErrors {
	fieldErrors := services.ValidationErrors{}

	if payload.Name != nil {
		if nameLength := len([]rune(strings.TrimSpace(*payload.Name))); nameLength < 2 || nameLength > 50 {
			fieldErrors = append(fieldErrors, services.FieldError{Field: "name", Message: "name must be 2 to 50 characters"})
		}
	}
	if payload.Unit != nil && *payload.Unit != models.UnitKilograms && *payload.Unit != models.UnitPounds {
		fieldErrors = append(fieldErrors, services.FieldError{Field: "unit", Message: "unit must be kg or lbs"})
	}
	if payload.Weight != nil && *payload.Weight <= 0 {
		fieldErrors = append(fieldErrors, services.FieldError{Field: "weight", Message: "weight must be positive"})
	}
	if payload.Height != nil && *payload.Height <= 0 {
		fieldErrors = append(fieldErrors, services.FieldError{Field: "height", Message: "height must be positive"})
	}
	if payload.BodyFat != nil && (*payload.BodyFat < 1 || *payload.BodyFat > 100) {
		fieldErrors = append(fieldErrors, services.FieldError{Field: "body_fat", Message: "body fat must be between 1 and 100"})
	}
	if payload.DateOfBirth != nil {
		if _, err := time.Parse(dayParamLayout, strings.TrimSpace(*payload.DateOfBirth)); err != nil {
			fieldErrors = append(fieldErrors, services.FieldError{Field: "date_of_birth", Message: "date_of_birth must be YYYY-MM-DD"})
		}
	}
	if payload.Gender != nil {
		switch *payload.Gender {
		case models.GenderMale, models.GenderFemale, models.GenderOther:
		default:
			fieldErrors = append(fieldErrors, services.FieldError{Field: "gender", Message: "unknown gender"})
		}
	}
	return fieldErrors
}

func isValidMuscleGroup(value string) bool {
	for _, muscle := range models.MuscleGroups() {
		if value == muscle {
			return true
		}
	}
	return false
}
