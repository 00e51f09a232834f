package main

import (
	"fmt"
	"log/slog"

	"github.com/Tushar3330/Mytube/internal/platform/config"
	"github.com/Tushar3330/Mytube/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(
		migrateDirectionCmd(database.MigrateUp, "Apply all pending migrations"),
		migrateDirectionCmd(database.MigrateDown, "Roll back all migrations"),
	)
	return cmd
}

func migrateDirectionCmd(direction database.MigrationDirection, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(direction),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := newLogger(cfg.LogLevel)
			return runMigrations(logger, cfg, direction)
		},
	}
}

func runMigrations(logger *slog.Logger, cfg *config.Config, direction database.MigrationDirection) error {
	logger.Info("Running database migrations...", slog.String("direction", string(direction)), slog.String("path", cfg.MigrationsPath))
	changed, err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, direction)
	if err != nil {
		return err
	}
	if changed {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
	return nil
}
