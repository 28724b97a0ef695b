package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jkleiven/repwise/internal/models"
)

func TestGetExercisesListsCatalog(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "ola@example.com", "Sterk1Passord")

	createTestExerciseRow(t, database, "Back Squat")
	createTestExerciseRow(t, database, "Overhead Press")

	response := performJSONRequest(t, app, http.MethodGet, "/api/exercises", cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	var exercises []models.Exercise
	decodeJSONBody(t, response, &exercises)
	if len(exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %#v", exercises)
	}
	if exercises[0].Name != "Back Squat" {
		t.Fatalf("expected alphabetical order, got %#v", exercises)
	}
}

func TestCreateExercise(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "ola@example.com", "Sterk1Passord")

	response := performJSONRequest(t, app, http.MethodPost, "/api/exercises", cookie, fiber.Map{
		"name":              "Zercher Squat",
		"primary_muscle":    models.MuscleLegs,
		"secondary_muscles": []string{models.MuscleCore},
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	var created models.Exercise
	decodeJSONBody(t, response, &created)
	if created.ID == 0 || created.IsBuiltin {
		t.Fatalf("unexpected exercise %#v", created)
	}

	var stored models.Exercise
	if err := database.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("load exercise: %v", err)
	}
	if stored.Name != "Zercher Squat" || len(stored.SecondaryMuscles) != 1 {
		t.Fatalf("unexpected stored exercise %#v", stored)
	}
}

func TestCreateExerciseRejectsDuplicateName(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "ola@example.com", "Sterk1Passord")

	createTestExerciseRow(t, database, "Back Squat")

	response := performJSONRequest(t, app, http.MethodPost, "/api/exercises", cookie, fiber.Map{
		"name":           "back squat",
		"primary_muscle": models.MuscleLegs,
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
}

func TestCreateExerciseValidation(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "ola@example.com", "Sterk1Passord")

	cases := []struct {
		name    string
		payload fiber.Map
	}{
		{"name too short", fiber.Map{"name": "A", "primary_muscle": models.MuscleLegs}},
		{"unknown primary muscle", fiber.Map{"name": "Neck Curl", "primary_muscle": "neck"}},
		{"unknown secondary muscle", fiber.Map{"name": "Neck Curl", "primary_muscle": models.MuscleCore, "secondary_muscles": []string{"neck"}}},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			response := performJSONRequest(t, app, http.MethodPost, "/api/exercises", cookie, testCase.payload)
			defer response.Body.Close()
			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
		})
	}
}
