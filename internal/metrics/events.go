package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/kingdomroll/internal/event"
	"github.com/osse101/kingdomroll/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RollCompleted,
		event.BonusRollGranted,
		event.WalletBound,
		event.KingdomStarted,
		event.ExploreScheduled,
		event.ExploreResolved,
	}
	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.RollCompleted:
		payload, err := event.DecodePayload[event.RollCompletedPayloadV1](evt.Payload)
		if err != nil {
			return nil
		}
		RollsPerformed.WithLabelValues(payload.Source).Inc()
		RollsByTier.WithLabelValues(strconv.Itoa(payload.Tier)).Inc()
		if payload.IsPity {
			PityAwards.Inc()
		}

	case event.BonusRollGranted:
		payload, err := event.DecodePayload[event.BonusRollGrantedPayloadV1](evt.Payload)
		if err != nil {
			return nil
		}
		BonusRollsGranted.Add(float64(payload.Count))

	case event.WalletBound:
		WalletsBound.Inc()

	case event.KingdomStarted:
		payload, err := event.DecodePayload[event.KingdomStartedPayloadV1](evt.Payload)
		if err != nil {
			return nil
		}
		KingdomsStarted.WithLabelValues(payload.Race).Inc()

	case event.ExploreScheduled:
		ExploresScheduled.Inc()

	case event.ExploreResolved:
		payload, err := event.DecodePayload[event.ExploreResolvedPayloadV1](evt.Payload)
		if err != nil {
			return nil
		}
		ExploresResolved.WithLabelValues(payload.EncounterID).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
