package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"jobmate/placement-service/internal/grpcserver"
	pb "jobmate/placement-service/internal/pb"
	"jobmate/placement-service/internal/scheduler"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC API, the health/metrics endpoint and the sweep scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	a, err := build(parent)
	if err != nil {
		return err
	}
	defer a.close()
	log := a.log

	// ── Scheduler ───────────────────────────────────────────────────────────
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var sched *scheduler.Scheduler
	if a.cfg.SchedulerEnabled {
		sched = scheduler.New(a.coordinator, scheduler.Config{
			Interval:   a.cfg.SweepInterval,
			StartDelay: a.cfg.SweepStartDelay,
			WeeklyDay:  a.cfg.WeeklyReminderDay,
			WeeklyHour: a.cfg.WeeklyReminderHour,
		}, log.Named("scheduler"))
		if err := sched.Start(ctx); err != nil {
			return err
		}
	} else {
		log.Warn("scheduler disabled; sweeps run only on demand")
	}

	// ── gRPC server ─────────────────────────────────────────────────────────
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.LoggingInterceptor(log.Named("grpc"))))
	pb.RegisterPlacementServiceServer(grpcSrv, grpcserver.NewServer(a.engine, a.coordinator, log.Named("grpc")))

	// ── HTTP server ─────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%s", a.cfg.HTTPPort),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%s", a.cfg.GRPCPort))
		if err != nil {
			return errors.Wrap(err, "grpc listen")
		}
		log.Infow("gRPC server listening", "port", a.cfg.GRPCPort, "version", version)
		return grpcSrv.Serve(lis)
	})

	g.Go(func() error {
		log.Infow("HTTP server listening", "port", a.cfg.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})

	// ── Graceful shutdown ───────────────────────────────────────────────────
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)
		select {
		case <-quit:
			log.Info("shutting down…")
		case <-gctx.Done():
			log.Info("context cancelled, shutting down…")
		}

		if sched != nil {
			sched.Stop()
		}
		cancel()
		grpcSrv.GracefulStop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warnw("HTTP shutdown error", "err", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorw("server exited with error", "err", err)
		return err
	}
	log.Info("stopped.")
	return nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "placement-service",
		"version": version,
	})
}
