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
	"petwelfare/internal/domain/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type userAdminService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	now       func() time.Time
	logger    *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(txManager repository.TransactionManager, hasher service.PasswordHasher, logger *slog.Logger) usecase.UserAdminUsecase {
	return &userAdminService{
		txManager: txManager,
		hasher:    hasher,
		now:       time.Now,
		logger:    logger,
	}
}

func (srv *userAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userAdminService) ListUsers(ctx context.Context, filter entity.UserFilter, page entity.PageRequest) (*entity.Page[*entity.User], error) {
	page = page.Normalize()

	var result *entity.Page[*entity.User]
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, total, err := repoFactory.UserRepo().List(ctx, filter, page)
		if err != nil {
			return domainerrors.FromRepository(err, nil, "list users")
		}
		result = newPage(users, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return result, nil
}

func (srv *userAdminService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, id)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// AssignRole gives the user an existing active role. Module scoped roles also set the user's module.
func (srv *userAdminService) AssignRole(ctx context.Context, actor *usecase.Actor, userID uuid.UUID, roleName string) (*entity.User, error) {
	roleName = strings.TrimSpace(roleName)
	if roleName == entity.RoleSuperAdmin && !actor.IsSuperAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only a super admin can grant super_admin")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		role, err := repoFactory.RoleRepo().FindByName(ctx, roleName)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrRoleNotFound, "find role")
		}
		if !role.IsActive {
			return domainerrors.ErrInvalidRole.WithDetails(roleName + " is inactive")
		}

		userRepo := repoFactory.UserRepo()
		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find user")
		}

		found.Role = role.Name
		if module, _, ok := entity.ParseModuleRole(role.Name); ok {
			found.Module = module
		} else {
			found.Module = ""
			found.StoreID = ""
			found.StoreName = ""
		}
		found.UpdatedAt = srv.now()

		if err := userRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, "update user role")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to assign role")
	}

	srv.log(ctx).Info("Role assigned",
		slog.String("userID", userID.String()),
		slog.String("role", roleName),
		slog.String("by", actor.UserID.String()),
	)

	return user, nil
}

func (srv *userAdminService) SetUserActive(ctx context.Context, actor *usecase.Actor, userID uuid.UUID, active bool) (*entity.User, error) {
	if !active && actor.UserID == userID {
		return nil, domainerrors.ErrForbidden.WithDetails("you cannot deactivate your own account")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrUserNotFound, "find user")
		}
		if found.IsSuperAdmin() && !actor.IsSuperAdmin() {
			return domainerrors.ErrForbidden.WithDetails("super admins can only be changed by a super admin")
		}

		found.IsActive = active
		found.UpdatedAt = srv.now()
		if err := userRepo.Update(ctx, found); err != nil {
			return domainerrors.FromRepository(err, nil, "update user status")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change user status")
	}

	return user, nil
}

func (srv *userAdminService) CreateModuleAdmin(ctx context.Context, actor *usecase.Actor, input usecase.StaffInput) (*usecase.StaffOutput, error) {
	if !actor.IsSuperAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only a super admin can create module admins")
	}

	module := entity.ModuleFromName(input.Module)
	if !module.IsAssignable() {
		return nil, domainerrors.ErrInvalidModule.WithDetails(input.Module)
	}

	return srv.upsertStaff(ctx, input, module, entity.StaffAdmin, nil)
}

func (srv *userAdminService) CreateModuleStaff(ctx context.Context, actor *usecase.Actor, input usecase.StaffInput) (*usecase.StaffOutput, error) {
	module := entity.ModuleFromName(input.Module)
	if !module.IsAssignable() {
		return nil, domainerrors.ErrInvalidModule.WithDetails(input.Module)
	}
	if input.Kind != entity.StaffManager && input.Kind != entity.StaffWorker {
		return nil, domainerrors.ErrInvalidRole.WithDetails("staff must be a manager or a worker")
	}
	if !actor.IsSuperAdmin() && !actor.IsModuleAdmin(module) {
		return nil, domainerrors.ErrForbidden.WithDetails("only the " + module.DisplayName() + " admin can add staff")
	}

	supervisor := actor.UserID

	return srv.upsertStaff(ctx, input, module, input.Kind, &supervisor)
}

// upsertStaff promotes the account registered under input.Email or creates it with a
// temporary password that must be changed on first login.
func (srv *userAdminService) upsertStaff(
	ctx context.Context,
	input usecase.StaffInput,
	module entity.Module,
	kind entity.StaffKind,
	supervisor *uuid.UUID,
) (*usecase.StaffOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	roleName := entity.ModuleRoleName(module, kind)
	now := srv.now()

	var out *usecase.StaffOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		role, err := repoFactory.RoleRepo().FindByName(ctx, roleName)
		if err != nil {
			return domainerrors.FromRepository(err, domainerrors.ErrRoleNotFound.WithDetails(roleName), "find staff role")
		}
		if !role.IsActive {
			return domainerrors.ErrInvalidRole.WithDetails(roleName + " is inactive")
		}

		userRepo := repoFactory.UserRepo()
		existing, err := userRepo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			if existing.IsSuperAdmin() {
				return domainerrors.ErrInvalidRole.WithDetails("a super admin cannot be reassigned")
			}
			applyStaffRole(existing, input, module, roleName, supervisor)
			existing.UpdatedAt = now
			if err := userRepo.Update(ctx, existing); err != nil {
				return domainerrors.FromRepository(err, nil, "promote user")
			}
			out = &usecase.StaffOutput{User: existing}

			return nil
		case !errors.Is(err, repository.ErrNotFound):
			return domainerrors.FromRepository(err, nil, "find user by email")
		}

		if strings.TrimSpace(input.Name) == "" || input.Password == "" {
			return domainerrors.ErrValidationFailed.WithDetails("name and password are required for new accounts")
		}
		if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
			return err
		}
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user := &entity.User{
			ID:                 uuid.New(),
			Name:               strings.TrimSpace(input.Name),
			Email:              email,
			Phone:              input.Phone,
			PasswordHash:       hash,
			AuthProvider:       entity.AuthProviderLocal,
			IsActive:           true,
			MustChangePassword: true,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		applyStaffRole(user, input, module, roleName, supervisor)
		if err := userRepo.Create(ctx, user); err != nil {
			return domainerrors.FromRepository(err, nil, "create staff user")
		}
		out = &usecase.StaffOutput{User: user, Created: true}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create module staff")
	}

	srv.log(ctx).Info("Module staff assigned",
		slog.String("email", email),
		slog.String("role", roleName),
		slog.Bool("created", out.Created),
	)

	return out, nil
}

func applyStaffRole(user *entity.User, input usecase.StaffInput, module entity.Module, roleName string, supervisor *uuid.UUID) {
	user.Role = roleName
	user.Module = module
	user.SupervisorID = supervisor
	if input.StoreID != "" {
		user.StoreID = input.StoreID
	}
	if input.StoreName != "" {
		user.StoreName = input.StoreName
	}
}
