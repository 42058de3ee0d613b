package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"vector-forces/internal/config"
	"vector-forces/internal/forces"
	"vector-forces/internal/history"
	"vector-forces/internal/observability"
	"vector-forces/internal/server"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing
	traceShutdown, err := observability.InitTracing(ctx)
	if err != nil {
		panic(err)
	}
	defer traceShutdown(ctx)

	// OTLP log export, teed with the stdout logger
	logShutdown, err := observability.InitLogging(ctx)
	if err != nil {
		panic(err)
	}
	defer logShutdown(ctx)

	// Metrics
	metricShutdown, err := initMetrics(ctx)
	if err != nil {
		panic(err)
	}
	defer metricShutdown(ctx)

	// Session history, optionally restored from a previous run.
	log := history.NewLog(cfg.History.Capacity)
	var store *history.Store
	if cfg.History.File != "" {
		store = history.NewStore(cfg.History.File)
		entries, err := store.Load()
		if err != nil {
			panic(err)
		}
		log.Replace(entries)
	}

	api := forces.NewAPI(log, cfg.Defaults.Scale, cfg.Defaults.Unit)

	router := server.NewRouter(api)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		observability.Logger.Info("server started", zap.String("addr", cfg.Addr))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	waitForShutdown(srv)

	if store != nil {
		if err := store.Save(api.Snapshot()); err != nil {
			observability.Logger.Error("saving history", zap.Error(err))
		}
	}
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}

func waitForShutdown(srv *http.Server) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.Shutdown(ctx)
}
