package main

import (
	"context"

	"petwelfare/internal/infra/persistence/postgres"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), nil, func(ctx context.Context, d deps) error {
				if err := postgres.Migrate(ctx, d.DB); err != nil {
					return err
				}

				color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Migration completed")

				return nil
			})
		},
	}
}
