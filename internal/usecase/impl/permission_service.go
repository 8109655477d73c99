package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/policy"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type permissionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPermissionService is the constructor for permissionService.
func NewPermissionService(txManager repository.TransactionManager, logger *slog.Logger) usecase.PermissionUsecase {
	return &permissionService{txManager: txManager, logger: logger}
}

func (srv *permissionService) ListPermissions(ctx context.Context, filter entity.PermissionFilter) ([]*entity.Permission, error) {
	var permissions []*entity.Permission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PermissionRepo().List(ctx, filter)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list permissions")
		}
		permissions = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list permissions")
	}

	return permissions, nil
}

func (srv *permissionService) GetPermission(ctx context.Context, id uuid.UUID) (*entity.Permission, error) {
	var permission *entity.Permission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PermissionRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPermissionNotFound, "find permission")
		}
		permission = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get permission")
	}

	return permission, nil
}

func (srv *permissionService) CreatePermission(ctx context.Context, input usecase.PermissionInput) (*entity.Permission, error) {
	name := strings.TrimSpace(input.Name)
	if !entity.PermissionNamePattern.MatchString(name) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name may only contain lowercase letters and underscores")
	}
	if !input.Module.IsPermissionModule() {
		return nil, domainerrors.ErrInvalidModule.WithDetails(string(input.Module))
	}
	if !entity.IsValidAction(input.Action) {
		return nil, domainerrors.ErrInvalidAction.WithDetails(input.Action)
	}
	if err := validateConditions(input.Conditions); err != nil {
		return nil, err
	}

	now := time.Now()
	permission := &entity.Permission{
		ID:          uuid.New(),
		Name:        name,
		DisplayName: input.DisplayName,
		Description: input.Description,
		Module:      input.Module,
		Action:      input.Action,
		Resource:    input.Resource,
		Conditions:  input.Conditions,
		IsActive:    input.IsActive == nil || *input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permRepo := repoFactory.PermissionRepo()

		if _, err := permRepo.FindByName(ctx, name); err == nil {
			return domainerrors.ErrPermissionExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return domainerrors.FromRepository(err, nil, "find permission by name")
		}

		if err := permRepo.Create(ctx, permission); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.ErrPermissionExists
			}

			return domainerrors.FromRepository(err, nil, "create permission")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create permission")
	}

	return permission, nil
}

func (srv *permissionService) UpdatePermission(ctx context.Context, id uuid.UUID, input usecase.PermissionUpdate) (*entity.Permission, error) {
	if input.Conditions != nil {
		if err := validateConditions(*input.Conditions); err != nil {
			return nil, err
		}
	}

	var permission *entity.Permission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permRepo := repoFactory.PermissionRepo()

		found, err := permRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPermissionNotFound, "find permission")
		}

		if input.DisplayName != nil {
			found.DisplayName = *input.DisplayName
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Resource != nil {
			found.Resource = *input.Resource
		}
		if input.Conditions != nil {
			found.Conditions = *input.Conditions
		}
		if input.IsActive != nil {
			found.IsActive = *input.IsActive
		}
		found.UpdatedAt = time.Now()

		if err := permRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, "update permission")
		}
		permission = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update permission")
	}

	return permission, nil
}

// DeletePermission removes a permission unless an active role explicitly grants its module and action.
func (srv *permissionService) DeletePermission(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permRepo := repoFactory.PermissionRepo()

		permission, err := permRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrPermissionNotFound, "find permission")
		}

		roles, err := repoFactory.RoleRepo().List(ctx, true)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list roles")
		}

		var grantedBy []string
		for _, role := range roles {
			if grantsExplicitly(role, permission.Module, permission.Action) {
				grantedBy = append(grantedBy, role.Name)
			}
		}
		if len(grantedBy) > 0 {
			return domainerrors.ErrPermissionInUse.WithDetails("granted by roles: " + strings.Join(grantedBy, ", "))
		}

		return domainerrors.FromRepository(permRepo.Delete(ctx, id), domainerrors.ErrPermissionNotFound, "delete permission")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete permission")
	}

	return nil
}

func (srv *permissionService) ListModules() []usecase.ModuleOption {
	options := make([]usecase.ModuleOption, 0, len(entity.PermissionModules))
	for _, m := range entity.PermissionModules {
		options = append(options, usecase.ModuleOption{Key: m, Name: m.DisplayName()})
	}

	return options
}

func (srv *permissionService) ListActions() []string {
	return slices.Clone(entity.Actions)
}

// CheckPermission grants access when the actor's role allows module/action and every
// condition of the matching active permission documents holds for the attributes.
// Super admins are always allowed.
func (srv *permissionService) CheckPermission(ctx context.Context, actor *usecase.Actor, check usecase.PermissionCheck) (*usecase.PermissionDecision, error) {
	decision := &usecase.PermissionDecision{
		Module:   string(check.Module),
		Action:   check.Action,
		Resource: check.Resource,
	}

	if actor == nil {
		decision.Reason = "not authenticated"

		return decision, nil
	}
	if actor.IsSuperAdmin() {
		decision.Allowed = true
		decision.Reason = "super admin"

		return decision, nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		role, err := repoFactory.RoleRepo().FindByName(ctx, actor.Role)
		if errors.Is(err, repository.ErrNotFound) {
			decision.Reason = "role " + actor.Role + " does not exist"

			return nil
		}
		if err != nil {
			return domainerrors.FromRepository(err, nil, "find role")
		}

		if !role.HasPermission(check.Module, check.Action) {
			decision.Reason = "role does not grant " + check.Action + " on " + string(check.Module)

			return nil
		}

		permissions, err := repoFactory.PermissionRepo().FindActiveFor(ctx, check.Module, check.Action, check.Resource)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "find permissions")
		}

		attrs := permissionAttributes(actor, check.Attributes)
		for _, permission := range permissions {
			decision.EvaluatedPermission = append(decision.EvaluatedPermission, permission.Name)
			if !policy.Evaluate(permission.Conditions, attrs) {
				decision.Reason = "conditions of " + permission.Name + " not met"

				return nil
			}
		}

		decision.Allowed = true

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check permission")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Permission checked",
		slog.String("role", actor.Role),
		slog.String("module", string(check.Module)),
		slog.String("action", check.Action),
		slog.Bool("allowed", decision.Allowed),
	)

	return decision, nil
}

// permissionAttributes exposes the actor under "user" next to the caller supplied attributes.
func permissionAttributes(actor *usecase.Actor, attrs map[string]any) map[string]any {
	merged := make(map[string]any, len(attrs)+1)
	for k, v := range attrs {
		merged[k] = v
	}
	merged["user"] = map[string]any{
		"id":      actor.UserID.String(),
		"role":    actor.Role,
		"module":  string(actor.Module),
		"storeId": actor.StoreID,
	}

	return merged
}

// grantsExplicitly ignores the super_admin bypass of Role.HasPermission.
func grantsExplicitly(role *entity.Role, module entity.Module, action string) bool {
	for _, perm := range role.Permissions {
		if perm.Module != module {
			continue
		}
		if slices.Contains(perm.Actions, action) || slices.Contains(perm.Actions, entity.ActionManage) {
			return true
		}
	}

	return false
}

func validateConditions(conditions []entity.Condition) error {
	for _, cond := range conditions {
		if strings.TrimSpace(cond.Field) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("condition field is required")
		}
		if !policy.IsKnownOperator(cond.Operator) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown condition operator " + string(cond.Operator))
		}
	}

	return nil
}
