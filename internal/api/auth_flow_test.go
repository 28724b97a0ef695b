package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jkleiven/repwise/internal/models"
)

func TestRegisterLoginAndLogoutFlow(t *testing.T) {
	app, database := newTestApp(t)

	cookie := registerAndExtractAuthCookie(t, app, "ola@example.com", "Sterk1Passord")

	var userCount int64
	if err := database.Model(&models.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount != 1 {
		t.Fatalf("expected one user, got %d", userCount)
	}

	// The register cookie is a live session.
	response := performJSONRequest(t, app, http.MethodGet, "/api/profile", cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected profile status 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	// Logging in again with the same credentials works.
	response = performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ola@example.com",
		"password": "Sterk1Passord",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}
	var loggedIn models.User
	decodeJSONBody(t, response, &loggedIn)
	if loggedIn.Email != "ola@example.com" {
		t.Fatalf("unexpected login body %#v", loggedIn)
	}

	response = performJSONRequest(t, app, http.MethodPost, "/api/auth/logout", cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected logout status 200, got %d", response.StatusCode)
	}
	cleared := false
	for _, responseCookie := range response.Cookies() {
		if responseCookie.Name == authCookieName && responseCookie.Value == "" {
			cleared = true
		}
	}
	response.Body.Close()
	if !cleared {
		t.Fatal("expected the auth cookie to be cleared on logout")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	registerAndExtractAuthCookie(t, app, "ola@example.com", "Sterk1Passord")

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":            " OLA@example.com ",
		"password":         "Sterk1Passord",
		"confirm_password": "Sterk1Passord",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload fiber.Map
	}{
		{
			name: "password mismatch",
			payload: fiber.Map{
				"email":            "ola@example.com",
				"password":         "Sterk1Passord",
				"confirm_password": "Annet1Passord",
			},
		},
		{
			name: "weak password",
			payload: fiber.Map{
				"email":            "ola@example.com",
				"password":         "svakt",
				"confirm_password": "svakt",
			},
		},
		{
			name: "invalid email",
			payload: fiber.Map{
				"email":            "not-an-email",
				"password":         "Sterk1Passord",
				"confirm_password": "Sterk1Passord",
			},
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			response := performJSONRequest(t, app, http.MethodPost, "/api/auth/register", "", testCase.payload)
			defer response.Body.Close()
			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	registerAndExtractAuthCookie(t, app, "ola@example.com", "Sterk1Passord")

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ola@example.com",
		"password": "FeilPassord1",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []string{"/api/profile", "/api/exercises", "/api/workouts", "/api/stats"}
	for _, path := range paths {
		response := performJSONRequest(t, app, http.MethodGet, path, "", nil)
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected %s to return 401, got %d", path, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestChangePasswordFlow(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "ola@example.com", "Sterk1Passord")

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/change-password", cookie, fiber.Map{
		"current_password": "FeilPassord1",
		"new_password":     "Nyere1Passord",
		"confirm_password": "Nyere1Passord",
	})
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for a wrong current password, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSONRequest(t, app, http.MethodPost, "/api/auth/change-password", cookie, fiber.Map{
		"current_password": "Sterk1Passord",
		"new_password":     "Nyere1Passord",
		"confirm_password": "Nyere1Passord",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	// The old password no longer works, the new one does.
	response = performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ola@example.com",
		"password": "Sterk1Passord",
	})
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected the old password to be rejected, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ola@example.com",
		"password": "Nyere1Passord",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected the new password to be accepted, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestMustChangePasswordGate(t *testing.T) {
	app, database := newTestApp(t)
	cookie := registerAndExtractAuthCookie(t, app, "ola@example.com", "Sterk1Passord")

	if err := database.Model(&models.User{}).Where("1 = 1").Update("must_change_password", true).Error; err != nil {
		t.Fatalf("flag user: %v", err)
	}

	// Everything except the password change and logout is blocked.
	response := performJSONRequest(t, app, http.MethodGet, "/api/profile", cookie, nil)
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 while the flag is set, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSONRequest(t, app, http.MethodPost, "/api/auth/change-password", cookie, fiber.Map{
		"current_password": "Sterk1Passord",
		"new_password":     "Nyere1Passord",
		"confirm_password": "Nyere1Passord",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected the password change to be allowed, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performJSONRequest(t, app, http.MethodGet, "/api/profile", cookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected access restored after the change, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"duplicate email", errors.New("UNIQUE constraint failed: users.email"), true},
		{"lowercase driver message", errors.New("unique constraint failed: users.email"), true},
		{"unrelated persistence failure", errors.New("database is locked"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("isUniqueViolation(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
