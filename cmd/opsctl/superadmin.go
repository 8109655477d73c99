package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"petwelfare/config"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/usecase"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type superAdminInput struct {
	Email    string
	Name     string
	Password string
}

type superAdminResult struct {
	User         *entity.User
	Created      bool
	RolesSeeded  int
	PreviousRole string
}

func newFixSuperAdminCommand() *cobra.Command {
	var input superAdminInput

	cmd := &cobra.Command{
		Use:   "fix-superadmin",
		Short: "Ensure the super admin account exists, is active and can sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), nil, func(ctx context.Context, d deps) error {
				resolved := input.withDefaults(d.Config.SuperAdmin)
				if resolved.Email == "" || resolved.Password == "" {
					return errors.New("email and password are required (flags or superAdmin config)")
				}

				result, err := fixSuperAdmin(ctx, d.TxManager, d.Hasher, d.RoleUC, resolved)
				if err != nil {
					return err
				}

				printSuperAdminResult(cmd.OutOrStdout(), result)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "super admin email (default from config)")
	cmd.Flags().StringVar(&input.Name, "name", "", "display name (default from config)")
	cmd.Flags().StringVar(&input.Password, "password", "", "new password (default from config)")

	return cmd
}

func (in superAdminInput) withDefaults(cfg *config.SuperAdminConfig) superAdminInput {
	if cfg != nil {
		if in.Email == "" {
			in.Email = cfg.Email
		}
		if in.Name == "" {
			in.Name = cfg.Name
		}
		if in.Password == "" {
			in.Password = cfg.Password
		}
	}
	if in.Name == "" {
		in.Name = "Super Admin"
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	return in
}

// fixSuperAdmin seeds the system roles and then creates or repairs the account.
func fixSuperAdmin(
	ctx context.Context,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	roleUC usecase.RoleUsecase,
	input superAdminInput,
) (*superAdminResult, error) {
	seeded, err := roleUC.InitializeDefaults(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed system roles")
	}

	hash, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	result := &superAdminResult{RolesSeeded: seeded}
	err = txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		users := repos.UserRepo()

		user, err := users.FindByEmail(ctx, input.Email)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			user = &entity.User{
				ID:           uuid.New(),
				Name:         input.Name,
				Email:        input.Email,
				PasswordHash: hash,
				AuthProvider: entity.AuthProviderLocal,
				Role:         entity.RoleSuperAdmin,
				IsActive:     true,
			}
			result.User, result.Created = user, true

			return users.Create(ctx, user)
		case err != nil:
			return err
		}

		result.PreviousRole = user.Role
		user.Role = entity.RoleSuperAdmin
		user.Module = ""
		user.StoreID = ""
		user.IsActive = true
		user.MustChangePassword = false
		user.PasswordHash = hash
		if user.AuthProvider == entity.AuthProviderGoogle {
			user.AuthProvider = entity.AuthProviderBoth
		}
		result.User = user

		return users.Update(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save super admin")
	}

	return result, nil
}

func printSuperAdminResult(w io.Writer, result *superAdminResult) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	if result.RolesSeeded > 0 {
		yellow.Fprintf(w, "Seeded %d system role(s)\n", result.RolesSeeded)
	}

	if result.Created {
		green.Fprintf(w, "Created super admin %s\n", result.User.Email)

		return
	}

	green.Fprintf(w, "Repaired super admin %s\n", result.User.Email)
	if result.PreviousRole != entity.RoleSuperAdmin {
		fmt.Fprintf(w, "  role: %s -> %s\n", result.PreviousRole, entity.RoleSuperAdmin)
	}
	fmt.Fprintln(w, "  active, password reset, mustChangePassword cleared")
}
