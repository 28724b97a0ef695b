package services

import (
	"strings"
	"time"

	"github.com/jkleiven/repwise/internal/models"
)

const (
	defaultProfileHeight = 170
	defaultProfileWeight = 70
)

type ProfileRepository interface {
	FindByUserID(userID uint) (models.Profile, bool, error)
	Create(profile *models.Profile) error
	Save(profile *models.Profile) error
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// EnsureProfile loads the user's profile, creating one with defaults the
// first time it is requested. The name falls back to the email local part.
func (service *ProfileService) EnsureProfile(user *models.User) (models.Profile, error) {
	profile, found, err := service.profiles.FindByUserID(user.ID)
	if err != nil {
		return models.Profile{}, err
	}
	if found {
		return profile, nil
	}

	profile = models.Profile{
		UserID: user.ID,
		Name:   defaultProfileName(user.Email),
		Unit:   models.UnitKilograms,
		Height: defaultProfileHeight,
		Weight: defaultProfileWeight,
	}
	if err := service.profiles.Create(&profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// ProfileUpdate carries the fields a PUT may change; nil means untouched.
type ProfileUpdate struct {
	Name        *string
	Unit        *string
	Weight      *float64
	Height      *float64
	BodyFat     *float64
	DateOfBirth *string
	Gender      *string
}

func (service *ProfileService) UpdateProfile(user *models.User, update ProfileUpdate) (models.Profile, error) {
	profile, err := service.EnsureProfile(user)
	if err != nil {
		return models.Profile{}, err
	}

	if update.Name != nil {
		profile.Name = strings.TrimSpace(*update.Name)
	}
	if update.Unit != nil {
		profile.Unit = *update.Unit
	}
	if update.Weight != nil {
		profile.Weight = *update.Weight
	}
	if update.Height != nil {
		profile.Height = *update.Height
	}
	if update.BodyFat != nil {
		profile.BodyFat = *update.BodyFat
	}
	if update.DateOfBirth != nil {
		profile.DateOfBirth = *update.DateOfBirth
	}
	if update.Gender != nil {
		profile.Gender = *update.Gender
	}
	profile.UpdatedAt = time.Now()

	if err := service.profiles.Save(&profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func defaultProfileName(email string) string {
	localPart, _, found := strings.Cut(email, "@")
	if !found || strings.TrimSpace(localPart) == "" {
		return "User"
	}
	return localPart
}
