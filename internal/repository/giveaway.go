package repository

import (
	"context"

	"github.com/osse101/kingdomroll/internal/domain"
)

// Giveaway defines the interface for per-guild giveaway configuration
type Giveaway interface {
	// GetChannel returns the configured channel or domain.ErrChannelNotSet
	GetChannel(ctx context.Context, guildID string) (*domain.GiveawayChannel, error)

	// SetChannel upserts the giveaway channel for a guild
	SetChannel(ctx context.Context, channel domain.GiveawayChannel) error
}
