package repository

import (
	"context"

	"github.com/osse101/kingdomroll/internal/domain"
)

// LeaderboardEntry is one row of the victory leaderboard
type LeaderboardEntry struct {
	Username   string
	Race       string
	RegionName string
	Victories  int
	TroopCount int
}

// Kingdom defines the interface for player kingdom storage
type Kingdom interface {
	// CreatePlayer inserts a new player. Returns domain.ErrRegionTaken if the
	// region is already claimed in the guild and domain.ErrPlayerExists if the
	// user already has a kingdom there.
	CreatePlayer(ctx context.Context, player domain.Player) (string, error)

	// GetPlayer returns a player or domain.ErrPlayerNotFound
	GetPlayer(ctx context.Context, userID, guildID string) (*domain.Player, error)

	// GetPlayerByID returns a player by player ID or domain.ErrPlayerNotFound
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)

	// UpdatePlayer persists mutable player state (resources, units, stamina,
	// timestamps, victories)
	UpdatePlayer(ctx context.Context, player domain.Player) error

	// UpgradeBuilding deducts cost and raises the building level atomically.
	// Returns domain.ErrInsufficientFunds if resources changed underneath.
	UpgradeBuilding(ctx context.Context, playerID, buildingName string, cost domain.Resources, newLevel int) error

	// GetPlayerBuildings lists owned buildings with levels
	GetPlayerBuildings(ctx context.Context, playerID string) ([]domain.PlayerBuilding, error)

	// AddPlayerBuilding grants a building at level 1
	AddPlayerBuilding(ctx context.Context, playerID, buildingName string) error

	// ListBuildings returns the static building catalog
	ListBuildings(ctx context.Context) ([]domain.Building, error)

	// GetBuilding returns one catalog entry or domain.ErrBuildingNotFound
	GetBuilding(ctx context.Context, name string) (*domain.Building, error)

	// ListRaces returns the selectable races
	ListRaces(ctx context.Context) ([]domain.Race, error)

	// ListRegions returns all regions with their claim state for a guild
	ListRegions(ctx context.Context, guildID string) ([]domain.Region, map[string]bool, error)

	// Leaderboard returns the top players of a guild by victories
	Leaderboard(ctx context.Context, guildID string, limit int) ([]LeaderboardEntry, error)
}
