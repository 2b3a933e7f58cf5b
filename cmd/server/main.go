// Renix is an investment return and tax computation service.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/renix/renix/internal/cache"
	"github.com/renix/renix/internal/config"
	"github.com/renix/renix/internal/modules/rates"
	"github.com/renix/renix/internal/modules/simulation"
	"github.com/renix/renix/internal/scheduler"
	"github.com/renix/renix/internal/server"
	"github.com/renix/renix/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet, fall back to stderr
		println("Failed to load configuration:", err.Error())
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Int("port", cfg.Port).
		Bool("dev_mode", cfg.DevMode).
		Msg("Starting Renix")

	// Rate snapshot registry, seeded from configuration. Runtime updates
	// arrive through the API.
	registry := rates.NewRegistry(rates.Snapshot{
		CDI:   cfg.Rates.CDI,
		SELIC: cfg.Rates.SELIC,
		IPCA:  cfg.Rates.IPCA,
	}, log)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	engine := simulation.NewEngine(workers, log)

	// Computation cache: Redis when configured, in-process otherwise
	var computationCache cache.Cache
	if cfg.RedisAddr != "" {
		computationCache = cache.NewRedisCache(cfg.RedisAddr)
		log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis computation cache")
	} else {
		computationCache = cache.NewMemoryCache()
		log.Info().Msg("Using in-memory computation cache")
	}

	srv := server.New(server.Config{
		Log:      log,
		Config:   cfg,
		Port:     cfg.Port,
		DevMode:  cfg.DevMode,
		Engine:   engine,
		Registry: registry,
		Cache:    computationCache,
	})

	// Background jobs
	sched := scheduler.New(log)
	watchdog := rates.NewStalenessWatchdog(registry, cfg.SnapshotMaxAge, log)
	if err := sched.AddJob(cfg.WatchdogSchedule, watchdog); err != nil {
		log.Error().Err(err).Msg("Failed to schedule snapshot staleness watchdog")
	}
	sched.Start()

	// Start server in a goroutine so we can listen for shutdown signals
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("Server error")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("Shutdown complete")
}
