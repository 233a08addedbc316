package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/litreview/internal/persistence"
)

// NewMigrateCommand groups the schema migration subcommands.
func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back or inspect the embedded goose migrations.`,
	}
	cmd.AddCommand(
		newMigrationCommand("up", "Run all pending migrations", persistence.MigrateUp),
		newMigrationCommand("down", "Roll back the latest migration", persistence.MigrateDown),
		newMigrationCommand("status", "Show migration status", persistence.MigrateStatus),
	)
	return cmd
}

func newMigrationCommand(use, short string, direction persistence.MigrationDirection) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigration(cmd.Context(), direction)
		},
	}
}

func runMigration(ctx context.Context, direction persistence.MigrationDirection) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), direction, logger); err != nil {
		logger.Error("migration failed", zap.String("direction", string(direction)), zap.Error(err))
		return err
	}
	return nil
}
