package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	mocks "petwelfare/internal/mocks/usecase"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	actor := &usecase.Actor{UserID: uuid.New(), Role: entity.RolePublicUser}

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mocks.MockAuthUsecase)
		wantStatus int
		wantCode   string
		wantActor  bool
	}{
		{
			name:   "valid bearer token",
			header: "Bearer good-token",
			setupMock: func(m *mocks.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good-token").Return(actor, nil).Once()
			},
			wantStatus: http.StatusNoContent,
			wantActor:  true,
		},
		{
			name:       "missing header",
			setupMock:  func(m *mocks.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not a bearer token",
			header:     "Token abc",
			setupMock:  func(m *mocks.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "expired token",
			header: "Bearer old-token",
			setupMock: func(m *mocks.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "old-token").Return(nil, domainerrors.ErrTokenExpired).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_EXPIRED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mocks.NewMockAuthUsecase(t)
			tt.setupMock(authUC)

			mw := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC, Logger: slog.Default()})
			c, rec := newAuthContext(tt.header)

			require.NoError(t, mw.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).ErrorCode)
			}

			got, ok := GetActor(c)
			assert.Equal(t, tt.wantActor, ok)
			if tt.wantActor {
				assert.Equal(t, actor.UserID, got.UserID)
			}
		})
	}
}

func TestAuthMiddleware_RequireModule(t *testing.T) {
	mw := NewAuthMiddleware(AuthMiddlewareParams{Logger: slog.Default()})

	tests := []struct {
		name       string
		actor      *usecase.Actor
		kinds      []entity.StaffKind
		wantStatus int
	}{
		{name: "no actor", wantStatus: http.StatusUnauthorized},
		{
			name:       "super admin",
			actor:      &usecase.Actor{Role: entity.RoleSuperAdmin},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "module worker",
			actor:      &usecase.Actor{Role: entity.ModuleRoleName(entity.ModulePetShop, entity.StaffWorker)},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "worker below required level",
			actor:      &usecase.Actor{Role: entity.ModuleRoleName(entity.ModulePetShop, entity.StaffWorker)},
			kinds:      []entity.StaffKind{entity.StaffAdmin, entity.StaffManager},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "other module manager",
			actor:      &usecase.Actor{Role: entity.ModuleRoleName(entity.ModulePharmacy, entity.StaffManager)},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "plain user",
			actor:      &usecase.Actor{Role: entity.RolePublicUser},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("")
			if tt.actor != nil {
				SetActor(c, tt.actor)
			}

			require.NoError(t, mw.RequireModule(entity.ModulePetShop, tt.kinds...)(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequirePermission(t *testing.T) {
	actor := &usecase.Actor{UserID: uuid.New(), Role: "auditor"}

	t.Run("allowed", func(t *testing.T) {
		permUC := mocks.NewMockPermissionUsecase(t)
		permUC.EXPECT().CheckPermission(mock.Anything, actor, usecase.PermissionCheck{Module: entity.ModuleRBAC, Action: entity.ActionRead}).
			Return(&usecase.PermissionDecision{Allowed: true}, nil).Once()

		mw := NewAuthMiddleware(AuthMiddlewareParams{PermissionUC: permUC, Logger: slog.Default()})
		c, rec := newAuthContext("")
		SetActor(c, actor)

		require.NoError(t, mw.RequirePermission(entity.ModuleRBAC, entity.ActionRead)(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("denied", func(t *testing.T) {
		permUC := mocks.NewMockPermissionUsecase(t)
		permUC.EXPECT().CheckPermission(mock.Anything, actor, mock.Anything).
			Return(&usecase.PermissionDecision{Allowed: false, Reason: "no grant"}, nil).Once()

		mw := NewAuthMiddleware(AuthMiddlewareParams{PermissionUC: permUC, Logger: slog.Default()})
		c, rec := newAuthContext("")
		SetActor(c, actor)

		require.NoError(t, mw.RequirePermission(entity.ModuleRBAC, entity.ActionManage)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, rec).ErrorCode)
	})
}

func TestGetUserID(t *testing.T) {
	c, _ := newAuthContext("")
	_, ok := GetUserID(c)
	assert.False(t, ok)

	id := uuid.New()
	SetActor(c, &usecase.Actor{UserID: id})
	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
