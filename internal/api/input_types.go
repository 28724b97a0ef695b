package api

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type setPayload struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type exerciseSetsPayload struct {
	ExerciseID uint         `json:"exercise_id"`
	Sets       []setPayload `json:"sets"`
}

type createWorkoutPayload struct {
	Date      string                `json:"date"`
	Exercises []exerciseSetsPayload `json:"exercises"`
}

type exercisePayload struct {
	Name             string   `json:"name"`
	PrimaryMuscle    string   `json:"primary_muscle"`
	SecondaryMuscles []string `json:"secondary_muscles"`
}

type profileUpdatePayload struct {
	Name        *string  `json:"name"`
	Unit        *string  `json:"unit"`
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	BodyFat     *float64 `json:"body_fat"`
	DateOfBirth *string  `json:"date_of_birth"`
	Gender      *string  `json:"gender"`
}
