package models

import "time"

// Workout owns its sets exclusively: the writer removes them itself on a
// failed save instead of trusting the schema cascade.
type Workout struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	Date      time.Time    `gorm:"type:date;not null;index" json:"date"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	Sets      []WorkoutSet `gorm:"foreignKey:WorkoutID" json:"workout_sets,omitempty"`
}

// SetNumber is 1-based and restarts for every exercise within a workout.
// It is assigned by the writer from submission order, never by the client.
type WorkoutSet struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WorkoutID  uint      `gorm:"not null;index" json:"workout_id"`
	ExerciseID uint      `gorm:"not null;index" json:"exercise_id"`
	SetNumber  int       `gorm:"not null" json:"set_number"`
	Reps       int       `gorm:"not null" json:"reps"`
	Weight     float64   `gorm:"not null" json:"weight"`
	Exercise   *Exercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
}
