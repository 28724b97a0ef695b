package services

import (
	"errors"

	"github.com/jkleiven/repwise/internal/models"
)

var ErrExerciseNameTaken = errors.New("exercise name already exists")

type ExerciseCatalog interface {
	ListAll() ([]models.Exercise, error)
	ExistsByName(name string) (bool, error)
	Create(exercise *models.Exercise) error
	EnsureBuiltins(builtins []models.BuiltinExercise) error
}

type ExerciseService struct {
	catalog ExerciseCatalog
}

func NewExerciseService(catalog ExerciseCatalog) *ExerciseService {
	return &ExerciseService{catalog: catalog}
}

func (service *ExerciseService) ListExercises() ([]models.Exercise, error) {
	return service.catalog.ListAll()
}

func (service *ExerciseService) CreateCustomExercise(exercise *models.Exercise) error {
	taken, err := service.catalog.ExistsByName(exercise.Name)
	if err != nil {
		return err
	}
	if taken {
		return ErrExerciseNameTaken
	}

	exercise.IsBuiltin = false
	return service.catalog.Create(exercise)
}

func (service *ExerciseService) SeedBuiltinExercises() error {
	return service.catalog.EnsureBuiltins(models.DefaultBuiltinExercises())
}
