package main

import (
	"context"
	"log/slog"

	"petwelfare/config"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/infra/auth"
	logs "petwelfare/internal/infra/log"
	"petwelfare/internal/infra/persistence/postgres"
	"petwelfare/internal/infra/storage"
	"petwelfare/internal/usecase"
	"petwelfare/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "opsctl",
		Short:         "Operational tooling for the pet welfare platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newFixSuperAdminCommand())
	cmd.AddCommand(newCheckCertsCommand())
	cmd.AddCommand(newSmokeCommand())
	cmd.AddCommand(newMigrateCommand())

	return cmd
}

// deps are the infrastructure pieces the database backed commands share.
type deps struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	DB        *gorm.DB
	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Storage   service.FileStorage
	RoleUC    usecase.RoleUsecase
}

// withDeps starts the database and storage, runs fn, then shuts everything down.
// configure may adjust the loaded config before anything connects.
func withDeps(ctx context.Context, configure func(*config.Config), fn func(context.Context, deps) error) error {
	var d deps
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			func() (*config.Config, error) {
				cfg, err := config.New()
				if err != nil {
					return nil, err
				}
				// Commands decide themselves whether to migrate.
				cfg.Migration.Auto = false
				if configure != nil {
					configure(cfg)
				}

				return cfg, nil
			},
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			storage.New,
			impl.NewRoleService,
		),
		fx.Invoke(func(in deps) { d = in }),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start dependencies")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			d.Logger.Warn("Failed to stop dependencies", slog.Any("error", err))
		}
	}()

	return fn(ctx, d)
}
