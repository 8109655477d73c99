package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/delivery/api/validator"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	type signup struct {
		Email string `validate:"required,email"`
	}
	validationErr := validator.New().Validate(signup{Email: "nope"})
	require.Error(t, validationErr)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{
			name:        "app error with details",
			err:         errors.WithStack(domainerrors.ErrPetNotAvailable.WithDetails("pet is reserved")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PET_NOT_AVAILABLE",
			wantDetails: true,
		},
		{
			name:       "validation errors",
			err:        validationErr,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			// field -> failed tag
			wantDetails: true,
		},
		{
			name:       "expired token",
			err:        errors.Wrap(jwt.ErrTokenExpired, "parse"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_EXPIRED",
		},
		{
			name:       "malformed token",
			err:        jwt.ErrTokenMalformed,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "duplicate row",
			err:        errors.WithStack(repository.ErrDuplicate),
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_KEY",
		},
		{
			name:       "missing row",
			err:        errors.WithStack(repository.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/adoption/pets", nil), rec)

			NewErrorMiddleware(slog.Default()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantCode, env.ErrorCode)
			assert.Equal(t, tt.wantDetails, env.Details != nil)
		})
	}
}

func TestErrorMiddleware_ValidationDetails(t *testing.T) {
	type signup struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required"`
	}
	err := validator.New().Validate(signup{Email: "x"})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/auth/register", nil), rec)

	NewErrorMiddleware(slog.Default()).HandleHTTPError(err, c)

	var body struct {
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "email", body.Details["email"])
	assert.Equal(t, "required", body.Details["name"])
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	NewErrorMiddleware(slog.Default()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
