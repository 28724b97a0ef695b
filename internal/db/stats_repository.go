package db

import (
	"time"

	"github.com/jkleiven/repwise/internal/models"
	"gorm.io/gorm"
)

type StatsRepository struct {
	database *gorm.DB
}

func NewStatsRepository(database *gorm.DB) *StatsRepository {
	return &StatsRepository{database: database}
}

func (repo *StatsRepository) FetchSetRows(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SetSample, error) {
	query := repo.database.Model(&models.WorkoutSet{}).
		Select("workouts.date AS date", "workout_sets.reps AS reps", "workout_sets.weight AS weight").
		Joins("JOIN workouts ON workouts.id = workout_sets.workout_id").
		Where("workouts.user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("workouts.date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("workouts.date < ?", *toEnd)
	}

	rows := make([]models.SetSample, 0)
	if err := query.Order("workouts.date ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *StatsRepository) CountWorkouts(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *StatsRepository) ListWorkoutDays(userID uint) ([]time.Time, error) {
	days := make([]time.Time, 0)
	if err := repo.database.Model(&models.Workout{}).
		Distinct("date").
		Where("user_id = ?", userID).
		Order("date ASC").
		Pluck("date", &days).Error; err != nil {
		return nil, err
	}
	return days, nil
}
