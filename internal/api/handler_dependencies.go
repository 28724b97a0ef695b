package api

import (
	"github.com/jkleiven/repwise/internal/db"
	"github.com/jkleiven/repwise/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.profileService = services.NewProfileService(handler.repositories.Profiles)
	handler.exerciseService = services.NewExerciseService(handler.repositories.Exercises)
	handler.workoutService = services.NewWorkoutService(handler.repositories.Workouts)
	handler.statsService = services.NewStatsService(handler.repositories.Stats)
	return handler
}
