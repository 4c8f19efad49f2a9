package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/kingdomroll/internal/discord"
	"github.com/osse101/kingdomroll/internal/event"
	"github.com/osse101/kingdomroll/internal/metrics"
	"github.com/osse101/kingdomroll/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	ExploreWorker   *worker.ExploreWorker
	ExploreNotifier *discord.ExploreNotifier
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event-based Prometheus counters)
// - Explore worker (schedules resolution timers for new missions)
// - Explore notifier (DMs mission results to players)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.ExploreWorker != nil {
		deps.ExploreWorker.Subscribe(deps.EventBus)
		slog.Info(LogMsgExploreWorkerSubscribed)
	}

	if deps.ExploreNotifier != nil {
		deps.ExploreNotifier.Subscribe(deps.EventBus)
		slog.Info(LogMsgExploreNotifierSubscribed)
	}

	return nil
}
