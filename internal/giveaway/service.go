// Package giveaway holds per-guild configuration for where roll commands
// may be used.
package giveaway

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/logger"
	"github.com/osse101/kingdomroll/internal/repository"
)

// Service defines the interface for giveaway configuration
type Service interface {
	// Channel returns the configured giveaway channel for a guild,
	// or domain.ErrChannelNotSet
	Channel(ctx context.Context, guildID string) (*domain.GiveawayChannel, error)

	// SetChannel stores the giveaway channel for a guild
	SetChannel(ctx context.Context, guildID, channelID, updatedBy string) error

	// CheckChannel returns domain.ErrWrongChannel when channelID is not
	// the configured giveaway channel for the guild
	CheckChannel(ctx context.Context, guildID, channelID string) error
}

type service struct {
	repo  repository.Giveaway
	cache *expirable.LRU[string, *domain.GiveawayChannel]
	now   func() time.Time
}

// NewService creates a new giveaway configuration service
func NewService(repo repository.Giveaway) Service {
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[string, *domain.GiveawayChannel](DefaultCacheSize, nil, DefaultCacheTTL),
		now:   time.Now,
	}
}

func (s *service) Channel(ctx context.Context, guildID string) (*domain.GiveawayChannel, error) {
	if ch, ok := s.cache.Get(guildID); ok {
		return ch, nil
	}
	ch, err := s.repo.GetChannel(ctx, guildID)
	if err != nil {
		return nil, err
	}
	s.cache.Add(guildID, ch)
	return ch, nil
}

func (s *service) SetChannel(ctx context.Context, guildID, channelID, updatedBy string) error {
	log := logger.FromContext(ctx)

	ch := domain.GiveawayChannel{
		GuildID:   guildID,
		ChannelID: channelID,
		UpdatedBy: updatedBy,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repo.SetChannel(ctx, ch); err != nil {
		return fmt.Errorf("set giveaway channel: %w", err)
	}
	// Drop the stale entry so the next read sees the new channel
	s.cache.Remove(guildID)

	log.Info(LogMsgChannelSet, "guild_id", guildID, "channel_id", channelID, "updated_by", updatedBy)
	return nil
}

func (s *service) CheckChannel(ctx context.Context, guildID, channelID string) error {
	ch, err := s.Channel(ctx, guildID)
	if err != nil {
		return err
	}
	if ch.ChannelID != channelID {
		return domain.ErrWrongChannel
	}
	return nil
}
