package models

const (
	MuscleChest     = "chest"
	MuscleBack      = "back"
	MuscleShoulders = "shoulders"
	MuscleLegs      = "legs"
	MuscleArms      = "arms"
	MuscleCore      = "core"
	MuscleFullBody  = "full_body"
	MuscleCardio    = "cardio"
)

func MuscleGroups() []string {
	return []string{
		MuscleChest,
		MuscleBack,
		MuscleShoulders,
		MuscleLegs,
		MuscleArms,
		MuscleCore,
		MuscleFullBody,
		MuscleCardio,
	}
}

type Exercise struct {
	ID               uint     `gorm:"primaryKey" json:"id"`
	Name             string   `gorm:"not null;uniqueIndex" json:"name"`
	PrimaryMuscle    string   `gorm:"not null" json:"primary_muscle"`
	SecondaryMuscles []string `gorm:"serializer:json" json:"secondary_muscles"`
	IsBuiltin        bool     `gorm:"not null;default:false" json:"is_builtin"`
}

type BuiltinExercise struct {
	Name             string
	PrimaryMuscle    string
	SecondaryMuscles []string
}

func DefaultBuiltinExercises() []BuiltinExercise {
	return []BuiltinExercise{
		{Name: "Barbell Bench Press", PrimaryMuscle: MuscleChest, SecondaryMuscles: []string{MuscleShoulders, MuscleArms}},
		{Name: "Incline Dumbbell Press", PrimaryMuscle: MuscleChest, SecondaryMuscles: []string{MuscleShoulders}},
		{Name: "Barbell Squat", PrimaryMuscle: MuscleLegs, SecondaryMuscles: []string{MuscleCore}},
		{Name: "Romanian Deadlift", PrimaryMuscle: MuscleLegs, SecondaryMuscles: []string{MuscleBack}},
		{Name: "Deadlift", PrimaryMuscle: MuscleBack, SecondaryMuscles: []string{MuscleLegs, MuscleCore}},
		{Name: "Pull-Up", PrimaryMuscle: MuscleBack, SecondaryMuscles: []string{MuscleArms}},
		{Name: "Barbell Row", PrimaryMuscle: MuscleBack, SecondaryMuscles: []string{MuscleArms}},
		{Name: "Overhead Press", PrimaryMuscle: MuscleShoulders, SecondaryMuscles: []string{MuscleArms, MuscleCore}},
		{Name: "Lateral Raise", PrimaryMuscle: MuscleShoulders, SecondaryMuscles: []string{}},
		{Name: "Barbell Curl", PrimaryMuscle: MuscleArms, SecondaryMuscles: []string{}},
		{Name: "Triceps Pushdown", PrimaryMuscle: MuscleArms, SecondaryMuscles: []string{}},
		{Name: "Leg Press", PrimaryMuscle: MuscleLegs, SecondaryMuscles: []string{}},
		{Name: "Leg Curl", PrimaryMuscle: MuscleLegs, SecondaryMuscles: []string{}},
		{Name: "Plank", PrimaryMuscle: MuscleCore, SecondaryMuscles: []string{MuscleShoulders}},
		{Name: "Hanging Leg Raise", PrimaryMuscle: MuscleCore, SecondaryMuscles: []string{}},
	}
}
