// Package db provides database connection helpers and the schema.
package db

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationName tags the service's sessions in pg_stat_activity.
const ApplicationName = "placement-service"

// connectTimeout bounds the startup ping of both stores.
const connectTimeout = 10 * time.Second

// NewPostgresPool parses databaseURL, sizes the pool for concurrent sweep
// passes next to RPC traffic, and pings before returning. Explicit pool_*
// parameters in the URL win over the defaults set here.
func NewPostgresPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.ParseConfig")
	}
	if cfg.ConnConfig.RuntimeParams["application_name"] == "" {
		cfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName
	}
	if cfg.MinConns < 2 {
		cfg.MinConns = 2
	}
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.NewWithConfig")
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrapf(err, "postgres ping %s", cfg.ConnConfig.Host)
	}
	return pool, nil
}
