package models

import "time"

const (
	UnitKilograms = "kg"
	UnitPounds    = "lbs"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type Profile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Unit        string    `gorm:"not null;default:kg" json:"unit"`
	Weight      float64   `json:"weight,omitempty"`
	Height      float64   `json:"height,omitempty"`
	BodyFat     float64   `json:"body_fat,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
