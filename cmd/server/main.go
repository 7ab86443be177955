package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaultkeeper/internal/app/core"
	"vaultkeeper/internal/app/server/api"
	"vaultkeeper/internal/config"
	"vaultkeeper/internal/infrastructure/storage/driver"
	"vaultkeeper/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := driver.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}

	vault := core.New(store, log, core.WithStrictToggles(cfg.StrictToggles))
	defer func() {
		if err := vault.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	if err := vault.Start(ctx); err != nil {
		log.Error("failed to start vault", "error", err)
		return
	}

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           api.New(vault, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	}()

	log.Info("server started", "address", cfg.Server.RunAddress, "env", cfg.Env, "driver", cfg.Storage.Driver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
		return
	}
	log.Info("server stopped")
}
