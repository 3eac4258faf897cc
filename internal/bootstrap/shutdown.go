package bootstrap

import (
	"context"
	"log/slog"

	"github.com/akwawa/guildmaster/internal/server"
	"github.com/akwawa/guildmaster/internal/storage"
	"github.com/akwawa/guildmaster/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server         *server.Server
	AutosaveWorker *worker.AutosaveWorker
	SavePool       *worker.Pool
	Store          storage.Store
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Autosave worker (stop scheduling new save jobs)
// 3. Save pool (drain in-flight save jobs)
// 4. Storage backend (close connections last)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.AutosaveWorker != nil {
		if err := components.AutosaveWorker.Stop(ctx); err != nil {
			slog.Error(LogMsgAutosaveStopFailed, "error", err)
		}
	}

	if components.SavePool != nil {
		components.SavePool.Stop()
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
