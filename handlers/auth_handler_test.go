package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/register", RegisterUser)
	app.Post("/login", LoginUser)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

// Validation runs before any store access, so rejected registrations never
// reach the database.
func TestRegisterUserValidation(t *testing.T) {
	app := newAuthTestApp()

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing uppercase and digit", map[string]interface{}{
			"full_name": "Asha Rao", "email": "asha@example.com", "password": "abcdefgh", "role": "student",
		}},
		{"missing digit", map[string]interface{}{
			"full_name": "Asha Rao", "email": "asha@example.com", "password": "Abcdefgh", "role": "student",
		}},
		{"password too short", map[string]interface{}{
			"full_name": "Asha Rao", "email": "asha@example.com", "password": "Ab1", "role": "student",
		}},
		{"invalid email", map[string]interface{}{
			"full_name": "Asha Rao", "email": "not-an-email", "password": "Abcdef12", "role": "student",
		}},
		{"name too short", map[string]interface{}{
			"full_name": "A", "email": "asha@example.com", "password": "Abcdef12", "role": "student",
		}},
		{"name too short after trimming", map[string]interface{}{
			"full_name": "  A  ", "email": "asha@example.com", "password": "Abcdef12", "role": "student",
		}},
		{"name only whitespace", map[string]interface{}{
			"full_name": "   ", "email": "asha@example.com", "password": "Abcdef12", "role": "student",
		}},
		{"unknown role", map[string]interface{}{
			"full_name": "Asha Rao", "email": "asha@example.com", "password": "Abcdef12", "role": "admin",
		}},
		{"missing role", map[string]interface{}{
			"full_name": "Asha Rao", "email": "asha@example.com", "password": "Abcdef12",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/register", tt.payload)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestLoginUserValidation(t *testing.T) {
	app := newAuthTestApp()

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"invalid email", map[string]interface{}{"email": "nope", "password": "Abcdef12"}},
		{"missing password", map[string]interface{}{"email": "asha@example.com"}},
		{"missing email", map[string]interface{}{"password": "Abcdef12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/login", tt.payload)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
