package db

import (
	"time"

	"github.com/jkleiven/repwise/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) Create(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}

// CreateSets bulk-inserts the flattened set rows in a single statement.
func (repo *WorkoutRepository) CreateSets(sets []models.WorkoutSet) error {
	if len(sets) == 0 {
		return nil
	}
	return repo.database.Create(&sets).Error
}

// DeleteByID removes the workout and its sets. The set rows are deleted
// explicitly so the cleanup does not depend on the schema cascade.
func (repo *WorkoutRepository) DeleteByID(workoutID uint) error {
	if err := repo.database.Where("workout_id = ?", workoutID).Delete(&models.WorkoutSet{}).Error; err != nil {
		return err
	}
	return repo.database.Delete(&models.Workout{}, workoutID).Error
}

func (repo *WorkoutRepository) FindByID(workoutID uint) (models.Workout, bool, error) {
	var workout models.Workout
	result := repo.database.Preload("Sets.Exercise").Limit(1).Find(&workout, workoutID)
	if result.Error != nil {
		return models.Workout{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Workout{}, false, nil
	}
	return workout, true, nil
}

func (repo *WorkoutRepository) ListByUser(userID uint) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Preload("Sets", func(query *gorm.DB) *gorm.DB {
			return query.Order("workout_sets.exercise_id ASC, workout_sets.set_number ASC")
		}).
		Preload("Sets.Exercise").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ListByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Preload("Sets", func(query *gorm.DB) *gorm.DB {
			return query.Order("workout_sets.exercise_id ASC, workout_sets.set_number ASC")
		}).
		Preload("Sets.Exercise").
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("created_at DESC, id DESC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ListCreatedAt(userID uint) ([]time.Time, error) {
	timestamps := make([]time.Time, 0)
	if err := repo.database.Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("created_at", &timestamps).Error; err != nil {
		return nil, err
	}
	return timestamps, nil
}
