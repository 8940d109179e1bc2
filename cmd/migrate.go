package main

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"jobmate/placement-service/internal/config"
	"jobmate/placement-service/internal/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cfg, err := config.Load()
			if err != nil {
				return errors.Wrap(err, "config")
			}
			if cfg.StoreBackend != config.StorePostgres {
				return errors.Newf("migrate needs STORE_BACKEND=%s, got %s", config.StorePostgres, cfg.StoreBackend)
			}
			pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := db.Migrate(ctx, pool); err != nil {
				return err
			}
			cmd.Println("schema applied ✓")
			return nil
		},
	}
}
