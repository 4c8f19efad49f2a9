package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(RollCompleted, func(ctx context.Context, ev Event) error {
		if ev.Type != RollCompleted {
			t.Errorf("Expected event type %s, got %s", RollCompleted, ev.Type)
		}
		payload, err := DecodePayload[RollCompletedPayloadV1](ev.Payload)
		if err != nil {
			t.Fatalf("DecodePayload returned error: %v", err)
		}
		if payload.Username != "alric" {
			t.Errorf("Expected username 'alric', got %q", payload.Username)
		}
		if payload.Tier != 7 || !payload.IsPity {
			t.Errorf("Unexpected roll payload: %+v", payload)
		}
		handled = true
		return nil
	})

	ev := NewRollCompletedEvent("roll-1", "user-1", "alric", domain.RollResult{
		Tier:   7,
		IsPity: true,
		Source: domain.RollSourceDaily,
	})

	if err := bus.Publish(context.Background(), ev); err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, ev Event) error {
		count++
		return nil
	}

	bus.Subscribe(WalletBound, handler)
	bus.Subscribe(WalletBound, handler)

	err := bus.Publish(context.Background(), NewWalletBoundEvent("user-1", "9xQe...VFin"))
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewKingdomStartedEvent("player-1", "guild-1", "Elf", "gloom-forest"))
	if err != nil {
		t.Errorf("Publish without subscribers should be a no-op, got error: %v", err)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(ExploreScheduled, func(ctx context.Context, ev Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(ExploreScheduled, func(ctx context.Context, ev Event) error {
		return nil
	})

	task := domain.ScheduledTask{
		ID:       "task-1",
		Kind:     domain.TaskKindExplore,
		PlayerID: "player-1",
		DueAt:    time.Now().Add(30 * time.Minute),
	}
	err := bus.Publish(context.Background(), NewExploreScheduledEvent(task))
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	// Simulates a payload replayed from the dead-letter file, where
	// JSON decoding has produced a map instead of the typed struct.
	raw := map[string]interface{}{
		"task_id":     "task-9",
		"player_id":   "player-3",
		"due_at_unix": float64(1756400000),
	}

	payload, err := DecodePayload[ExploreScheduledPayloadV1](raw)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.TaskID != "task-9" || payload.PlayerID != "player-3" {
		t.Errorf("Unexpected payload: %+v", payload)
	}
	if payload.DueAtUnix != 1756400000 {
		t.Errorf("Expected due_at_unix 1756400000, got %d", payload.DueAtUnix)
	}
}
