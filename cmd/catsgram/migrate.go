package main

import (
	"github.com/spf13/cobra"

	"catsgram-backend/internal/bootstrap"
	"catsgram-backend/internal/common/config"
	"catsgram-backend/internal/common/logger"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users and posts tables",
		Long:  "Applies the schema to the database selected by STORAGE_DRIVER (postgres or sqlite) and DATABASE_DSN.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg.ServiceName, cfg.Debug)

			return bootstrap.Migrate(cmd.Context(), cfg)
		},
	}
}
