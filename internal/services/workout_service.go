package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jkleiven/repwise/internal/models"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// WorkoutStore is the persistence boundary of the workout writer.
type WorkoutStore interface {
	Create(workout *models.Workout) error
	CreateSets(sets []models.WorkoutSet) error
	DeleteByID(workoutID uint) error
}

type SetInput struct {
	Reps   int
	Weight float64
}

type ExerciseSetsInput struct {
	ExerciseID uint
	Sets       []SetInput
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (errs ValidationErrors) Error() string {
	messages := make([]string, 0, len(errs))
	for _, fieldError := range errs {
		messages = append(messages, fieldError.Field+": "+fieldError.Message)
	}
	return strings.Join(messages, "; ")
}

type WorkoutService struct {
	store WorkoutStore
}

func NewWorkoutService(store WorkoutStore) *WorkoutService {
	return &WorkoutService{store: store}
}

// ValidateWorkoutInput checks the submitted exercises before anything is
// written: at least one exercise, at least one set each, positive reps and
// non-negative weight throughout.
func ValidateWorkoutInput(exercises []ExerciseSetsInput) ValidationErrors {
	fieldErrors := ValidationErrors{}
	if len(exercises) == 0 {
		fieldErrors = append(fieldErrors, FieldError{Field: "exercises", Message: "at least one exercise is required"})
		return fieldErrors
	}

	for exerciseIndex, exercise := range exercises {
		prefix := fmt.Sprintf("exercises[%d]", exerciseIndex)
		if exercise.ExerciseID == 0 {
			fieldErrors = append(fieldErrors, FieldError{Field: prefix + ".exercise_id", Message: "exercise_id is required"})
		}
		if len(exercise.Sets) == 0 {
			fieldErrors = append(fieldErrors, FieldError{Field: prefix + ".sets", Message: "at least one set is required"})
			continue
		}
		for setIndex, set := range exercise.Sets {
			setPrefix := fmt.Sprintf("%s.sets[%d]", prefix, setIndex)
			if set.Reps <= 0 {
				fieldErrors = append(fieldErrors, FieldError{Field: setPrefix + ".reps", Message: "reps must be positive"})
			}
			if set.Weight < 0 {
				fieldErrors = append(fieldErrors, FieldError{Field: setPrefix + ".weight", Message: "weight must not be negative"})
			}
		}
	}
	return fieldErrors
}

// FlattenWorkoutSets turns the nested submission into the ordered rows to
// insert. Set numbers restart at 1 for every exercise and follow
// submission order.
func FlattenWorkoutSets(workoutID uint, exercises []ExerciseSetsInput) []models.WorkoutSet {
	rows := make([]models.WorkoutSet, 0, len(exercises))
	for _, exercise := range exercises {
		for setIndex, set := range exercise.Sets {
			rows = append(rows, models.WorkoutSet{
				WorkoutID:  workoutID,
				ExerciseID: exercise.ExerciseID,
				SetNumber:  setIndex + 1,
				Reps:       set.Reps,
				Weight:     set.Weight,
			})
		}
	}
	return rows
}

// CreateWorkout persists the parent row, then bulk-inserts the flattened
// sets. The two writes are not one transaction: if the set insert fails,
// the workout row is deleted again as a compensating action and the caller
// receives the set-insert failure. A reader can briefly observe the
// workout with zero sets between the two writes; that window is accepted.
func (service *WorkoutService) CreateWorkout(userID uint, date time.Time, exercises []ExerciseSetsInput) (models.Workout, error) {
	if fieldErrors := ValidateWorkoutInput(exercises); len(fieldErrors) > 0 {
		return models.Workout{}, fieldErrors
	}

	workout := models.Workout{UserID: userID, Date: date}
	if err := service.store.Create(&workout); err != nil {
		return models.Workout{}, fmt.Errorf("insert workout for user %d: %w", userID, err)
	}

	sets := FlattenWorkoutSets(workout.ID, exercises)
	if err := service.store.CreateSets(sets); err != nil {
		log.Printf("workout %d: set insert failed: %v", workout.ID, err)
		if cleanupErr := service.store.DeleteByID(workout.ID); cleanupErr != nil {
			// The original failure still wins; the orphan row is logged
			// and left behind.
			log.Printf("workout %d: compensating delete failed: %v", workout.ID, cleanupErr)
		}
		if isForeignKeyViolation(err) {
			return models.Workout{}, ErrExerciseNotFound
		}
		return models.Workout{}, fmt.Errorf("insert sets for workout %d: %w", workout.ID, err)
	}

	return workout, nil
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToUpper(err.Error()), "FOREIGN KEY")
}
