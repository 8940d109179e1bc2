package main

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"jobmate/placement-service/internal/config"
	"jobmate/placement-service/internal/db"
	"jobmate/placement-service/internal/lifecycle"
	"jobmate/placement-service/internal/logger"
	"jobmate/placement-service/internal/notify"
	"jobmate/placement-service/internal/store/memory"
	"jobmate/placement-service/internal/store/postgres"
	"jobmate/placement-service/internal/sweep"
)

// app holds the wired dependencies shared by every subcommand.
type app struct {
	cfg         *config.Config
	log         *zap.SugaredLogger
	store       lifecycle.Store
	engine      *lifecycle.Engine
	coordinator *sweep.Coordinator
	registry    *prometheus.Registry

	closers []func()
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	_ = a.log.Sync()
}

// build loads config and connects the store and notifier backends.
func build(ctx context.Context) (*app, error) {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	log, err := logger.New(cfg.LogJSON, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log, registry: prometheus.NewRegistry()}

	// ── Store ───────────────────────────────────────────────────────────────
	switch cfg.StoreBackend {
	case config.StoreMemory:
		log.Warn("using in-memory store; state is lost on exit")
		a.store = memory.New()
	default:
		log.Info("connecting to PostgreSQL…")
		pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			a.close()
			return nil, errors.Wrap(err, "postgres")
		}
		a.closers = append(a.closers, pool.Close)
		log.Info("PostgreSQL connected ✓")
		if err := db.Migrate(ctx, pool); err != nil {
			a.close()
			return nil, err
		}
		a.store = postgres.New(pool)
	}

	// ── Notification gateway ────────────────────────────────────────────────
	var sink lifecycle.Notifier
	switch cfg.NotifyBackend {
	case config.NotifyKafka:
		kp := notify.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		a.closers = append(a.closers, func() {
			if err := kp.Close(); err != nil {
				log.Warnw("kafka writer close", "err", err)
			}
		})
		log.Infow("publishing notifications to Kafka", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
		sink = kp
	case config.NotifyLog:
		sink = notify.NewLogSink(log)
	default:
		log.Info("connecting to Redis…")
		rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			a.close()
			return nil, errors.Wrap(err, "redis")
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		log.Info("Redis connected ✓")
		sink = notify.NewRedisPublisher(rdb, notify.DefaultChannel)
	}
	async := notify.NewAsync(sink, log, 0, 2, 0)
	a.closers = append(a.closers, async.Close)

	// ── Engine and sweeps ───────────────────────────────────────────────────
	policy := lifecycle.Policy{
		ApplicationValidity: cfg.ApplicationValidity,
		OfferValidity:       cfg.OfferValidity,
	}
	a.engine = lifecycle.NewEngine(a.store, async, lifecycle.SystemClock, policy, log.Named("engine"))

	sweepCfg := sweep.DefaultConfig()
	sweepCfg.BatchSize = cfg.SweepBatchSize
	a.coordinator = sweep.NewCoordinator(a.engine, a.store, sweepCfg, sweep.NewMetrics(a.registry), log.Named("sweep"))
	return a, nil
}
