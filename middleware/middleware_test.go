package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"upskill/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        &services.ValidationError{Op: "op", Fields: map[string]string{"rating": "Rating must be between 1 and 5"}},
			wantStatus: fiber.StatusBadRequest,
			wantMsg:    "Validation failed!",
		},
		{
			name:       "not found",
			err:        &services.ServiceError{Op: "op", Kind: services.ErrNotFound, Message: "User with ID 3 not found"},
			wantStatus: fiber.StatusNotFound,
			wantMsg:    "User with ID 3 not found",
		},
		{
			name:       "conflict",
			err:        &services.ServiceError{Op: "op", Kind: services.ErrConflict, Message: "Enrollment is already cancelled"},
			wantStatus: fiber.StatusConflict,
			wantMsg:    "Enrollment is already cancelled",
		},
		{
			name:       "unexpected",
			err:        errors.New("disk on fire"),
			wantStatus: fiber.StatusInternalServerError,
			wantMsg:    "Internal server error!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return ErrorResponse(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body struct {
				Status  bool   `json:"status"`
				Message string `json:"message"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.False(t, body.Status)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(RequestIDKey).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	generated := resp.Header.Get(RequestIDHeader)
	_, err = uuid.Parse(generated)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, generated, string(body))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, given)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, given, resp.Header.Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(RequestIDHeader))
}
