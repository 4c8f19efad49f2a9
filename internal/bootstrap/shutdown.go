package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/kingdomroll/internal/discord"
	"github.com/osse101/kingdomroll/internal/server"
	"github.com/osse101/kingdomroll/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server        *server.Server
	Bot           *discord.Bot
	ExploreWorker *worker.ExploreWorker
	Pool          *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the order:
// 1. HTTP server (stop accepting new requests)
// 2. Discord bot (stop accepting new interactions)
// 3. Explore worker (cancel pending timers; due tasks are recovered on restart)
// 4. Worker pool (drain in-flight jobs)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Bot != nil {
		slog.Info(LogMsgShuttingDownBot)
		components.Bot.Stop()
	}

	slog.Info(LogMsgShuttingDownWorkers)
	if components.ExploreWorker != nil {
		if err := components.ExploreWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgExploreWorkerFailed, "error", err)
		}
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
