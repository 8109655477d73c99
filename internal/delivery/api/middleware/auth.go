package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"petwelfare/internal/delivery/api/response"
	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const actorKey = "actor"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	PermissionUC usecase.PermissionUsecase
	Logger       *slog.Logger
}

// AuthMiddleware provides bearer authentication and authorization.
type AuthMiddleware struct {
	authUC       usecase.AuthUsecase
	permissionUC usecase.PermissionUsecase
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:       params.AuthUC,
		permissionUC: params.PermissionUC,
		logger:       params.Logger,
	}
}

// Authenticate resolves the bearer token into an Actor stored on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		actor, err := m.authUC.Authenticate(c.Request().Context(), strings.TrimSpace(tokenString))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		SetActor(c, actor)
		ctx := deliverycontext.WithCaller(c.Request().Context(), deliverycontext.Caller{
			UserID: actor.UserID.String(),
			Role:   actor.Role,
		}, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole allows only callers holding one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
			}

			if !slices.Contains(roles, actor.Role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}

// RequireModule allows super admins and the module's staff of the given kinds.
// Without kinds every staff level of the module is accepted.
func (m *AuthMiddleware) RequireModule(module entity.Module, kinds ...entity.StaffKind) echo.MiddlewareFunc {
	if len(kinds) == 0 {
		kinds = []entity.StaffKind{entity.StaffAdmin, entity.StaffManager, entity.StaffWorker}
	}

	roles := []string{entity.RoleSuperAdmin}
	for _, kind := range kinds {
		roles = append(roles, entity.ModuleRoleName(module, kind))
	}

	return m.RequireRole(roles...)
}

// RequirePermission evaluates the caller's role grants and permission
// conditions for module and action.
func (m *AuthMiddleware) RequirePermission(module entity.Module, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
			}

			decision, err := m.permissionUC.CheckPermission(c.Request().Context(), actor, usecase.PermissionCheck{
				Module: module,
				Action: action,
			})
			if err != nil {
				return response.HandleAppError(c, err)
			}

			if !decision.Allowed {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: "+string(module)+":"+action)
			}

			return next(c)
		}
	}
}

// SetActor stores the authenticated caller on the echo context.
func SetActor(c echo.Context, actor *usecase.Actor) {
	c.Set(actorKey, actor)
}

// GetActor returns the authenticated caller.
func GetActor(c echo.Context) (*usecase.Actor, bool) {
	actor, ok := c.Get(actorKey).(*usecase.Actor)

	return actor, ok && actor != nil
}

// GetUserID returns the authenticated caller's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}

	return actor.UserID, true
}
