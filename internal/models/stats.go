package models

import "time"

// SetSample is one persisted set paired with the day it was performed,
// the raw material for every volume figure.
type SetSample struct {
	Date   time.Time
	Reps   int
	Weight float64
}

// VolumeStat is one row per calendar day of training. DailyVolume is
// SUM(reps * weight) over that day's sets; WeeklyVolume and MonthlyVolume
// are the totals of the ISO week and calendar month containing the day, so
// every row of the same week carries the same weekly figure.
type VolumeStat struct {
	Date          string  `json:"date"`
	DailyVolume   float64 `json:"daily_volume"`
	WeeklyVolume  float64 `json:"weekly_volume"`
	MonthlyVolume float64 `json:"monthly_volume"`
}

// AggregatedPeriod is one week or month bucket of volume.
type AggregatedPeriod struct {
	Period    string  `json:"period"`
	Volume    float64 `json:"volume"`
	StartDate string  `json:"start_date"`
}

type UserStats struct {
	TotalWorkouts int     `json:"total_workouts"`
	TotalVolume   float64 `json:"total_volume"`
	CurrentStreak int     `json:"current_streak"`
	BestStreak    int     `json:"best_streak"`
}
