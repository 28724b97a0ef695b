package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jkleiven/repwise/internal/db"
	"github.com/jkleiven/repwise/internal/models"
	"github.com/jkleiven/repwise/internal/services"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories    *db.Repositories
	authService     *services.AuthService
	profileService  *services.ProfileService
	exerciseService *services.ExerciseService
	workoutService  *services.WorkoutService
	statsService    *services.StatsService

	loginLimiter *attemptLimiter
}

const (
	authCookieName = "repwise_auth"
	contextUserKey = "current_user"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
