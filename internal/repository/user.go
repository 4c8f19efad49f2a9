package repository

import (
	"context"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
)

// User defines the interface for user storage
type User interface {
	// EnsureUser returns the user for a Discord ID, creating the row on
	// first contact. Username is refreshed on every call.
	EnsureUser(ctx context.Context, discordID, username string) (*domain.User, error)

	// GetByDiscordID returns a user or domain.ErrUserNotFound
	GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error)

	// GetByID returns a user by internal ID or domain.ErrUserNotFound
	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateWallet sets the wallet address and its change timestamp
	UpdateWallet(ctx context.Context, userID, wallet string, changedAt time.Time) error

	// UpdatePityState persists the full pity state for a user
	UpdatePityState(ctx context.Context, userID string, state domain.PityState) error
}
