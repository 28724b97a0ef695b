package api

import (
	"testing"
	"time"
)

func TestParseDayParam(t *testing.T) {
	day, err := parseDayParam(" 2025-02-04 ", time.UTC)
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	if day.Year() != 2025 || day.Month() != time.February || day.Day() != 4 {
		t.Fatalf("unexpected day %v", day)
	}
	if day.Location() != time.UTC {
		t.Fatalf("expected the day anchored in UTC, got %v", day.Location())
	}

	for _, raw := range []string{"", "04.02.2025", "2025-2-4", "not-a-date"} {
		if _, err := parseDayParam(raw, time.UTC); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestWorkoutInputFromPayload(t *testing.T) {
	payload := createWorkoutPayload{
		Date: "2025-02-04",
		Exercises: []exerciseSetsPayload{
			{ExerciseID: 3, Sets: []setPayload{{Reps: 5, Weight: 100}, {Reps: 5, Weight: 102.5}}},
			{ExerciseID: 8, Sets: []setPayload{{Reps: 12, Weight: 0}}},
		},
	}

	exercises := workoutInputFromPayload(payload)
	if len(exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %#v", exercises)
	}
	if exercises[0].ExerciseID != 3 || len(exercises[0].Sets) != 2 {
		t.Fatalf("unexpected first exercise %#v", exercises[0])
	}
	if exercises[0].Sets[1].Weight != 102.5 {
		t.Fatalf("set values lost in mapping: %#v", exercises[0].Sets)
	}
	if exercises[1].Sets[0].Weight != 0 {
		t.Fatalf("bodyweight sets must map through: %#v", exercises[1].Sets)
	}
}
