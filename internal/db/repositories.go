package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Profiles  *ProfileRepository
	Exercises *ExerciseRepository
	Workouts  *WorkoutRepository
	Stats     *StatsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Profiles:  NewProfileRepository(database),
		Exercises: NewExerciseRepository(database),
		Workouts:  NewWorkoutRepository(database),
		Stats:     NewStatsRepository(database),
	}
}
