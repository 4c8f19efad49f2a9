package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/repository"
)

type giveawayRepository struct {
	db *pgxpool.Pool
}

// NewGiveawayRepository creates a new PostgreSQL giveaway config repository
func NewGiveawayRepository(db *pgxpool.Pool) repository.Giveaway {
	return &giveawayRepository{db: db}
}

func (r *giveawayRepository) GetChannel(ctx context.Context, guildID string) (*domain.GiveawayChannel, error) {
	query := `
		SELECT guild_id, channel_id, updated_by, updated_at
		FROM giveaway_channels
		WHERE guild_id = $1`

	var ch domain.GiveawayChannel
	err := r.db.QueryRow(ctx, query, guildID).Scan(&ch.GuildID, &ch.ChannelID, &ch.UpdatedBy, &ch.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChannelNotSet
		}
		return nil, fmt.Errorf("failed to get giveaway channel: %w", err)
	}
	return &ch, nil
}

func (r *giveawayRepository) SetChannel(ctx context.Context, channel domain.GiveawayChannel) error {
	query := `
		INSERT INTO giveaway_channels (guild_id, channel_id, updated_by, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (guild_id)
		DO UPDATE SET channel_id = EXCLUDED.channel_id,
		              updated_by = EXCLUDED.updated_by,
		              updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, channel.GuildID, channel.ChannelID, channel.UpdatedBy); err != nil {
		return fmt.Errorf("failed to set giveaway channel: %w", err)
	}
	return nil
}
