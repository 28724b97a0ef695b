package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	exercises := api.Group("/exercises", handler.AuthRequired)
	exercises.Get("", handler.GetExercises)
	exercises.Post("", handler.CreateExercise)

	workout := api.Group("/workout", handler.AuthRequired)
	workout.Post("", handler.CreateWorkout)
	workout.Get("", handler.GetWorkoutsByDate)

	workouts := api.Group("/workouts", handler.AuthRequired)
	workouts.Get("", handler.GetWorkouts)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("", handler.GetUserStats)
	stats.Get("/volume", handler.GetVolumeStats)
	stats.Get("/volume/aggregated", handler.GetAggregatedVolumeStats)
}
