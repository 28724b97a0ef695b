package db

import (
	"github.com/jkleiven/repwise/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) ListAll() ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) FindByID(exerciseID uint) (models.Exercise, bool, error) {
	var exercise models.Exercise
	result := repo.database.Limit(1).Find(&exercise, exerciseID)
	if result.Error != nil {
		return models.Exercise{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Exercise{}, false, nil
	}
	return exercise, true, nil
}

func (repo *ExerciseRepository) ExistsByName(name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Exercise{}).
		Where("lower(trim(name)) = lower(trim(?))", name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ExerciseRepository) Create(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

// EnsureBuiltins inserts any builtin exercise missing from the catalog.
// Safe to call on every startup.
func (repo *ExerciseRepository) EnsureBuiltins(builtins []models.BuiltinExercise) error {
	for _, builtin := range builtins {
		exists, err := repo.ExistsByName(builtin.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		exercise := models.Exercise{
			Name:             builtin.Name,
			PrimaryMuscle:    builtin.PrimaryMuscle,
			SecondaryMuscles: builtin.SecondaryMuscles,
			IsBuiltin:        true,
		}
		if err := repo.database.Create(&exercise).Error; err != nil {
			return err
		}
	}
	return nil
}
