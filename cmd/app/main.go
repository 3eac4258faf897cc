package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akwawa/guildmaster/internal/bootstrap"
	"github.com/akwawa/guildmaster/internal/catalog"
	"github.com/akwawa/guildmaster/internal/config"
	"github.com/akwawa/guildmaster/internal/game"
	"github.com/akwawa/guildmaster/internal/handler"
	"github.com/akwawa/guildmaster/internal/save"
	"github.com/akwawa/guildmaster/internal/server"
	"github.com/akwawa/guildmaster/internal/storage"
	"github.com/akwawa/guildmaster/internal/worker"
)

const (
	shutdownTimeout = 10 * time.Second
	savePoolWorkers = 2
	savePoolQueue   = 64
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx := context.Background()

	cat, err := catalog.Default()
	if err != nil {
		slog.Error("Failed to load game catalog", "error", err)
		os.Exit(1)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open storage backend", "backend", cfg.Storage, "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gameService := game.NewService(cat, seed)

	saveService, err := save.NewService(store, gameService.Generator())
	if err != nil {
		slog.Error("Failed to create save service", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	savePool := worker.NewPool(savePoolWorkers, savePoolQueue)
	savePool.Start()

	autosave := worker.NewAutosaveWorker(saveService, savePool, cfg.AutosaveInterval)
	autosave.Start(ctx)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, store, gameService, saveService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	case sig := <-quit:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		AutosaveWorker: autosave,
		SavePool:       savePool,
		Store:          store,
	})
}

// openStore opens the save backend selected by STORAGE_BACKEND
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		return storage.OpenPostgres(ctx, cfg.GetDBConnString())
	case config.StorageMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.OpenSQLite(ctx, cfg.SQLitePath)
	}
}
