package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type roleService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(txManager repository.TransactionManager, logger *slog.Logger) usecase.RoleUsecase {
	return &roleService{txManager: txManager, logger: logger}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *roleService) ListRoles(ctx context.Context, activeOnly bool) ([]*usecase.RoleSummary, error) {
	var summaries []*usecase.RoleSummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roles, err := repoFactory.RoleRepo().List(ctx, activeOnly)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list roles")
		}

		userRepo := repoFactory.UserRepo()
		summaries = make([]*usecase.RoleSummary, 0, len(roles))
		for _, role := range roles {
			count, err := userRepo.CountByRole(ctx, role.Name)
			if err != nil {
				return domainerrors.FromRepository(err, nil, "count role users")
			}
			summaries = append(summaries, &usecase.RoleSummary{Role: role, AssignedUsers: count})
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return summaries, nil
}

func (srv *roleService) GetRole(ctx context.Context, id uuid.UUID) (*usecase.RoleSummary, error) {
	var summary *usecase.RoleSummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		role, err := repoFactory.RoleRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrRoleNotFound, "find role")
		}

		count, err := repoFactory.UserRepo().CountByRole(ctx, role.Name)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "count role users")
		}
		summary = &usecase.RoleSummary{Role: role, AssignedUsers: count}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get role")
	}

	return summary, nil
}

func (srv *roleService) CreateRole(ctx context.Context, input usecase.RoleInput) (*entity.Role, error) {
	if err := validateRoleInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		DisplayName: input.DisplayName,
		Description: input.Description,
		Level:       input.Level,
		Permissions: input.Permissions,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.RoleRepo()

		if _, err := roleRepo.FindByName(ctx, role.Name); err == nil {
			return domainerrors.ErrRoleAlreadyExists
		} else if !errors.Is(err, repository.ErrNotFound) {
			return domainerrors.FromRepository(err, nil, "find role by name")
		}

		if err := roleRepo.Create(ctx, role); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.ErrRoleAlreadyExists
			}

			return domainerrors.FromRepository(err, nil, "create role")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create role")
	}

	srv.log(ctx).Info("Role created", slog.String("role", role.Name))

	return role, nil
}

func (srv *roleService) UpdateRole(ctx context.Context, id uuid.UUID, input usecase.RoleInput) (*entity.Role, error) {
	if err := validateRoleInput(input); err != nil {
		return nil, err
	}

	return srv.mutate(ctx, id, "update role", func(role *entity.Role) error {
		role.DisplayName = input.DisplayName
		role.Description = input.Description
		role.Level = input.Level
		role.Permissions = input.Permissions

		return nil
	})
}

func (srv *roleService) DeactivateRole(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.RoleRepo()

		role, err := roleRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrRoleNotFound, "find role")
		}
		if role.IsSystemRole {
			return domainerrors.ErrSystemRoleReadOnly
		}

		count, err := repoFactory.UserRepo().CountByRole(ctx, role.Name)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "count role users")
		}
		if count > 0 {
			return domainerrors.ErrRoleInUse.WithDetails(role.Name + " is assigned to users")
		}

		role.IsActive = false
		role.UpdatedAt = time.Now()

		return domainerrors.FromRepository(roleRepo.Update(ctx, role), nil, "deactivate role")
	})
	if err != nil {
		return errors.Wrap(err, "failed to deactivate role")
	}

	return nil
}

func (srv *roleService) AddModuleActions(ctx context.Context, id uuid.UUID, module entity.Module, actions []string) (*entity.Role, error) {
	if !module.IsPermissionModule() {
		return nil, domainerrors.ErrInvalidModule.WithDetails(string(module))
	}
	if len(actions) == 0 {
		return nil, domainerrors.ErrInvalidAction.WithDetails("at least one action is required")
	}
	for _, action := range actions {
		if !entity.IsValidAction(action) {
			return nil, domainerrors.ErrInvalidAction.WithDetails(action)
		}
	}

	return srv.mutate(ctx, id, "add module actions", func(role *entity.Role) error {
		role.AddModuleActions(module, actions)

		return nil
	})
}

func (srv *roleService) RemoveModule(ctx context.Context, id uuid.UUID, module entity.Module) (*entity.Role, error) {
	return srv.mutate(ctx, id, "remove module", func(role *entity.Role) error {
		if !role.RemoveModule(module) {
			return domainerrors.ErrInvalidModule.WithDetails("role has no grant on " + string(module))
		}

		return nil
	})
}

func (srv *roleService) InitializeDefaults(ctx context.Context) (int, error) {
	created := 0
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		created = 0
		roleRepo := repoFactory.RoleRepo()
		now := time.Now()

		for _, role := range entity.SystemRoles() {
			_, err := roleRepo.FindByName(ctx, role.Name)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return domainerrors.FromRepository(err, nil, "find system role")
			}

			role.ID = uuid.New()
			role.CreatedAt = now
			role.UpdatedAt = now
			if err := roleRepo.Create(ctx, role); err != nil {
				return domainerrors.FromRepository(err, nil, "create system role")
			}
			created++
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to initialize default roles")
	}

	srv.log(ctx).Info("Default roles initialized", slog.Int("created", created))

	return created, nil
}

// mutate loads a custom role, applies change and saves it. System roles are read-only.
func (srv *roleService) mutate(ctx context.Context, id uuid.UUID, op string, change func(*entity.Role) error) (*entity.Role, error) {
	var updated *entity.Role
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.RoleRepo()

		role, err := roleRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrRoleNotFound, "find role")
		}
		if role.IsSystemRole {
			return domainerrors.ErrSystemRoleReadOnly
		}

		if err := change(role); err != nil {
			return err
		}
		role.UpdatedAt = time.Now()

		if err := roleRepo.Update(ctx, role); err != nil {
			return domainerrors.FromRepository(err, nil, op)
		}
		updated = role

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to "+op)
	}

	return updated, nil
}

func validateRoleInput(input usecase.RoleInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.DisplayName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name and displayName are required")
	}
	if input.Level < entity.MinRoleLevel || input.Level > entity.MaxRoleLevel {
		return domainerrors.ErrValidationFailed.WithDetails("level must be between 1 and 10")
	}

	for _, perm := range input.Permissions {
		if !perm.Module.IsPermissionModule() {
			return domainerrors.ErrInvalidModule.WithDetails(string(perm.Module))
		}
		for _, action := range perm.Actions {
			if !entity.IsValidAction(action) {
				return domainerrors.ErrInvalidAction.WithDetails(action)
			}
		}
	}

	return nil
}
