package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	RollCompleted    Type = "roll.completed"
	BonusRollGranted Type = "roll.bonus_granted"
	WalletBound      Type = "wallet.bound"
	ExploreScheduled Type = "explore.scheduled"
	ExploreResolved  Type = "explore.resolved"
	KingdomStarted   Type = "kingdom.started"
)

// Typed event payloads for type safety

// RollCompletedPayloadV1 is the typed payload for completed rolls
type RollCompletedPayloadV1 struct {
	RollID    string `json:"roll_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Tier      int    `json:"tier"`
	IsPity    bool   `json:"is_pity"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// BonusRollGrantedPayloadV1 is the typed payload for bonus roll grants
type BonusRollGrantedPayloadV1 struct {
	UserID    string `json:"user_id"`
	GrantedBy string `json:"granted_by"`
	Count     int    `json:"count"`
	Timestamp int64  `json:"timestamp"`
}

// WalletBoundPayloadV1 is the typed payload for wallet binding events
type WalletBoundPayloadV1 struct {
	UserID    string `json:"user_id"`
	Masked    string `json:"masked"`
	Timestamp int64  `json:"timestamp"`
}

// ExploreScheduledPayloadV1 is the typed payload for scheduled explorations
type ExploreScheduledPayloadV1 struct {
	TaskID    string `json:"task_id"`
	PlayerID  string `json:"player_id"`
	DueAtUnix int64  `json:"due_at_unix"`
}

// ExploreResolvedPayloadV1 is the typed payload for resolved explorations
type ExploreResolvedPayloadV1 struct {
	TaskID      string `json:"task_id"`
	PlayerID    string `json:"player_id"`
	EncounterID string `json:"encounter_id"`
	Timestamp   int64  `json:"timestamp"`
}

// KingdomStartedPayloadV1 is the typed payload for new kingdoms
type KingdomStartedPayloadV1 struct {
	PlayerID string `json:"player_id"`
	GuildID  string `json:"guild_id"`
	Race     string `json:"race"`
	RegionID string `json:"region_id"`
}

// Type-safe event constructors

// NewRollCompletedEvent creates a roll completed event
func NewRollCompletedEvent(rollID, userID, username string, result domain.RollResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RollCompleted,
		Payload: RollCompletedPayloadV1{
			RollID:    rollID,
			UserID:    userID,
			Username:  username,
			Tier:      result.Tier,
			IsPity:    result.IsPity,
			Source:    string(result.Source),
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBonusRollGrantedEvent creates a bonus roll granted event
func NewBonusRollGrantedEvent(userID, grantedBy string, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BonusRollGranted,
		Payload: BonusRollGrantedPayloadV1{
			UserID:    userID,
			GrantedBy: grantedBy,
			Count:     count,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewWalletBoundEvent creates a wallet bound event
func NewWalletBoundEvent(userID, masked string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WalletBound,
		Payload: WalletBoundPayloadV1{
			UserID:    userID,
			Masked:    masked,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewExploreScheduledEvent creates an exploration scheduled event
func NewExploreScheduledEvent(task domain.ScheduledTask) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ExploreScheduled,
		Payload: ExploreScheduledPayloadV1{
			TaskID:    task.ID,
			PlayerID:  task.PlayerID,
			DueAtUnix: task.DueAt.Unix(),
		},
		Metadata: nil,
	}
}

// NewExploreResolvedEvent creates an exploration resolved event
func NewExploreResolvedEvent(taskID, playerID, encounterID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ExploreResolved,
		Payload: ExploreResolvedPayloadV1{
			TaskID:      taskID,
			PlayerID:    playerID,
			EncounterID: encounterID,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewKingdomStartedEvent creates a kingdom started event
func NewKingdomStartedEvent(playerID, guildID, race, regionID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    KingdomStarted,
		Payload: KingdomStartedPayloadV1{
			PlayerID: playerID,
			GuildID:  guildID,
			Race:     race,
			RegionID: regionID,
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
