package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	mocks "petwelfare/internal/mocks/usecase"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "Mina", Email: "mina@example.com", Role: entity.RolePublicUser}

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.MockAuthUsecase)
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{
			name: "creates account",
			body: `{"name":"Mina","email":"mina@example.com","password":"secret1"}`,
			setupMock: func(m *mocks.MockAuthUsecase) {
				m.EXPECT().Register(mock.Anything, usecase.RegisterInput{
					Name:     "Mina",
					Email:    "mina@example.com",
					Password: "secret1",
				}).Return(&usecase.AuthOutput{Token: "jwt", User: user}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid email",
			body:       `{"name":"Mina","email":"mina","password":"secret1"}`,
			setupMock:  func(m *mocks.MockAuthUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantField:  "email",
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			setupMock:  func(m *mocks.MockAuthUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "email taken",
			body: `{"name":"Mina","email":"mina@example.com","password":"secret1"}`,
			setupMock: func(m *mocks.MockAuthUsecase) {
				m.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   domainerrors.ErrUserAlreadyExists.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mocks.NewMockAuthUsecase(t)
			tt.setupMock(authUC)
			h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: slog.Default()})

			c, rec := newContext(http.MethodPost, "/api/auth/register", tt.body, nil)
			require.NoError(t, h.Register(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tt.wantCode, env.ErrorCode)
			if tt.wantField != "" {
				assert.Contains(t, env.Details, tt.wantField)
			}
			if tt.wantStatus == http.StatusCreated {
				var out AuthResponse
				require.NoError(t, json.Unmarshal(env.Data, &out))
				assert.Equal(t, "jwt", out.Token)
				assert.Equal(t, user.Email, out.User.Email)
			}
		})
	}
}

func TestAuthHandler_ResetPasswordRejectsShortOTP(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mocks.NewMockAuthUsecase(t), Logger: slog.Default()})

	body := `{"email":"mina@example.com","otp":"123","password":"secret1","confirmPassword":"secret1"}`
	c, rec := newContext(http.MethodPost, "/api/auth/reset-password", body, nil)
	require.NoError(t, h.ResetPassword(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "otp", decode(t, rec).Details["otp"])
}

func TestAuthHandler_MeRequiresActor(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mocks.NewMockAuthUsecase(t), Logger: slog.Default()})

	c, rec := newContext(http.MethodGet, "/api/auth/me", "", nil)
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
