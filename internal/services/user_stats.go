package services

import (
	"sort"
	"time"

	"github.com/jkleiven/repwise/internal/models"
)

// WorkoutStreaks computes the current and best run of consecutive training
// days. Days may contain duplicates and arrive in any order; the current
// streak counts back from today, or from yesterday when today has no
// workout yet.
func WorkoutStreaks(days []time.Time, today time.Time) (int, int) {
	if len(days) == 0 {
		return 0, 0
	}

	seen := make(map[string]struct{}, len(days))
	ordered := make([]time.Time, 0, len(days))
	for _, day := range days {
		truncated := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		key := truncated.Format(volumeDateLayout)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		ordered = append(ordered, truncated)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	best := 0
	run := 0
	var previous time.Time
	for index, day := range ordered {
		if index > 0 && day.Sub(previous) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		previous = day
	}

	todayKey := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	current := 0
	cursor := todayKey
	if _, trainedToday := seen[cursor.Format(volumeDateLayout)]; !trainedToday {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for {
		if _, trained := seen[cursor.Format(volumeDateLayout)]; !trained {
			break
		}
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return current, best
}

// TotalVolume sums reps times weight over every sample.
func TotalVolume(samples []models.SetSample) float64 {
	total := 0.0
	for _, sample := range samples {
		total += float64(sample.Reps) * sample.Weight
	}
	return total
}
