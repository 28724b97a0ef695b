package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jkleiven/repwise/internal/models"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "repwise.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "not-a-real-hash"}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestExercise(t *testing.T, database *gorm.DB, name string) models.Exercise {
	t.Helper()
	exercise := models.Exercise{Name: name, PrimaryMuscle: models.MuscleLegs, SecondaryMuscles: []string{}}
	if err := database.Create(&exercise).Error; err != nil {
		t.Fatalf("create test exercise: %v", err)
	}
	return exercise
}

func mustParseTestDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}
