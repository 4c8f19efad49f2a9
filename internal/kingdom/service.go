// Package kingdom implements the per-guild kingdom game loop: founding,
// resource production, building upgrades and the victory leaderboard.
package kingdom

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/event"
	"github.com/osse101/kingdomroll/internal/logger"
	"github.com/osse101/kingdomroll/internal/repository"
)

// BuildingStatus pairs a catalog entry with the player's owned level.
// Level is 0 when the building has not been constructed yet.
type BuildingStatus struct {
	Building domain.Building
	Level    int
	NextCost domain.Resources // nil at max level
}

// RegionStatus is a region plus its claim state within a guild.
type RegionStatus struct {
	Region  domain.Region
	Claimed bool
}

// Overview is the player snapshot shown by status commands.
type Overview struct {
	Player   *domain.Player
	Stamina  int
	RaceName string
}

// Service defines the interface for kingdom operations
type Service interface {
	// Start founds a kingdom for a user in a guild
	Start(ctx context.Context, discordID, username, guildID, race, regionID string) (*domain.Player, error)

	// Overview returns the player's kingdom with effective stamina
	Overview(ctx context.Context, discordID, guildID string) (*Overview, error)

	// Collect banks idle production and returns what was gained
	Collect(ctx context.Context, discordID, guildID string) (domain.Resources, error)

	// Upgrade raises a building one level, constructing it first if needed
	Upgrade(ctx context.Context, discordID, guildID, buildingName string) (*BuildingStatus, error)

	// Buildings lists the catalog annotated with the player's levels
	Buildings(ctx context.Context, discordID, guildID string) ([]BuildingStatus, error)

	// Races lists the selectable races
	Races(ctx context.Context) ([]domain.Race, error)

	// Regions lists regions with their claim state
	Regions(ctx context.Context, guildID string) ([]RegionStatus, error)

	// Leaderboard returns the guild's top players by victories
	Leaderboard(ctx context.Context, guildID string) ([]repository.LeaderboardEntry, error)
}

type service struct {
	userRepo           repository.User
	repo               repository.Kingdom
	eventBus           event.Bus
	collectMinInterval time.Duration
	now                func() time.Time
}

// NewService creates a new kingdom service
func NewService(userRepo repository.User, repo repository.Kingdom, eventBus event.Bus, collectMinInterval time.Duration) Service {
	if collectMinInterval <= 0 {
		collectMinInterval = DefaultCollectMinInterval
	}
	return &service{
		userRepo:           userRepo,
		repo:               repo,
		eventBus:           eventBus,
		collectMinInterval: collectMinInterval,
		now:                time.Now,
	}
}

// player resolves a Discord user to their kingdom in one guild.
func (s *service) player(ctx context.Context, discordID, guildID string) (*domain.Player, error) {
	user, err := s.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetPlayer(ctx, user.InternalID, guildID)
}

func (s *service) Start(ctx context.Context, discordID, username, guildID, race, regionID string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepo.EnsureUser(ctx, discordID, username)
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	races, err := s.repo.ListRaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list races: %w", err)
	}
	var raceName string
	for _, r := range races {
		if strings.EqualFold(r.Name, race) {
			raceName = r.Name
			break
		}
	}
	if raceName == "" {
		return nil, domain.ErrRaceNotFound
	}

	regions, claimed, err := s.repo.ListRegions(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	var region *domain.Region
	for i := range regions {
		if regions[i].ID == regionID {
			region = &regions[i]
			break
		}
	}
	if region == nil {
		return nil, domain.ErrRegionNotFound
	}
	if claimed[region.ID] {
		return nil, domain.ErrRegionTaken
	}

	now := s.now().UTC()
	player := domain.Player{
		UserID:           user.InternalID,
		GuildID:          guildID,
		Race:             raceName,
		RegionID:         region.ID,
		Resources:        StartingResources.Clone(),
		Units:            map[string]int{},
		Stamina:          domain.StaminaMax,
		StaminaUpdatedAt: now,
		BaseLevel:        1,
		CreatedAt:        now,
	}
	// The unique constraints catch a concurrent claim of the same region
	playerID, err := s.repo.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}
	player.ID = playerID

	for _, name := range StartingBuildings {
		if err := s.repo.AddPlayerBuilding(ctx, playerID, name); err != nil {
			return nil, fmt.Errorf("grant starting building %s: %w", name, err)
		}
	}

	if err := s.eventBus.Publish(ctx, event.NewKingdomStartedEvent(playerID, guildID, raceName, region.ID)); err != nil {
		log.Warn("Failed to publish kingdom event", "error", err)
	}
	log.Info(LogMsgKingdomStarted, "player_id", playerID, "guild_id", guildID, "race", raceName, "region", region.ID)

	return &player, nil
}

func (s *service) Overview(ctx context.Context, discordID, guildID string) (*Overview, error) {
	player, err := s.player(ctx, discordID, guildID)
	if err != nil {
		return nil, err
	}
	return &Overview{
		Player:   player,
		Stamina:  EffectiveStamina(player, s.now().UTC()),
		RaceName: player.Race,
	}, nil
}

func (s *service) Collect(ctx context.Context, discordID, guildID string) (domain.Resources, error) {
	log := logger.FromContext(ctx)

	player, err := s.player(ctx, discordID, guildID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	since := player.CreatedAt
	if player.LastCollectedAt != nil {
		since = *player.LastCollectedAt
	}
	elapsed := now.Sub(since)
	if elapsed < s.collectMinInterval {
		return nil, domain.ErrCollectTooSoon
	}
	if elapsed > CollectCapHours*time.Hour {
		elapsed = CollectCapHours * time.Hour
	}
	hours := int(elapsed.Hours())

	owned, err := s.repo.GetPlayerBuildings(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("list player buildings: %w", err)
	}
	catalog, err := s.buildingCatalog(ctx)
	if err != nil {
		return nil, err
	}

	gained := domain.Resources{}
	for _, pb := range owned {
		b, ok := catalog[pb.BuildingName]
		if !ok {
			continue
		}
		for res, perHour := range b.Production {
			gained[res] += perHour * pb.Level * hours
		}
	}

	player.Resources.Add(gained)
	player.LastCollectedAt = &now
	if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}

	log.Info(LogMsgResourcesCollected, "player_id", player.ID, "hours", hours)
	return gained, nil
}

func (s *service) Upgrade(ctx context.Context, discordID, guildID, buildingName string) (*BuildingStatus, error) {
	log := logger.FromContext(ctx)

	player, err := s.player(ctx, discordID, guildID)
	if err != nil {
		return nil, err
	}
	building, err := s.repo.GetBuilding(ctx, buildingName)
	if err != nil {
		return nil, err
	}

	owned, err := s.repo.GetPlayerBuildings(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("list player buildings: %w", err)
	}
	level := 0
	for _, pb := range owned {
		if pb.BuildingName == building.Name {
			level = pb.Level
			break
		}
	}

	if level == 0 {
		return s.construct(ctx, player, building)
	}

	if level >= building.MaxLevel || level > len(building.LevelCosts) {
		return nil, domain.ErrBuildingMaxLevel
	}
	cost := building.LevelCosts[level-1]
	if !player.Resources.CanAfford(cost) {
		return nil, domain.ErrInsufficientFunds
	}
	if err := s.repo.UpgradeBuilding(ctx, player.ID, building.Name, cost, level+1); err != nil {
		return nil, err
	}

	log.Info(LogMsgBuildingUpgraded, "player_id", player.ID, "building", building.Name, "level", level+1)
	return buildingStatus(*building, level+1), nil
}

// construct buys a building the player does not own yet at level 1.
func (s *service) construct(ctx context.Context, player *domain.Player, building *domain.Building) (*BuildingStatus, error) {
	log := logger.FromContext(ctx)

	if len(building.LevelCosts) == 0 {
		return nil, domain.ErrBuildingMaxLevel
	}
	cost := building.LevelCosts[0]
	if !player.Resources.CanAfford(cost) {
		return nil, domain.ErrInsufficientFunds
	}
	player.Resources.Subtract(cost)
	if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}
	if err := s.repo.AddPlayerBuilding(ctx, player.ID, building.Name); err != nil {
		return nil, fmt.Errorf("add building: %w", err)
	}

	log.Info(LogMsgBuildingUpgraded, "player_id", player.ID, "building", building.Name, "level", 1)
	return buildingStatus(*building, 1), nil
}

func (s *service) Buildings(ctx context.Context, discordID, guildID string) ([]BuildingStatus, error) {
	player, err := s.player(ctx, discordID, guildID)
	if err != nil {
		return nil, err
	}
	owned, err := s.repo.GetPlayerBuildings(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("list player buildings: %w", err)
	}
	levels := make(map[string]int, len(owned))
	for _, pb := range owned {
		levels[pb.BuildingName] = pb.Level
	}

	catalog, err := s.repo.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	statuses := make([]BuildingStatus, 0, len(catalog))
	for _, b := range catalog {
		statuses = append(statuses, *buildingStatus(b, levels[b.Name]))
	}
	return statuses, nil
}

func (s *service) Races(ctx context.Context) ([]domain.Race, error) {
	return s.repo.ListRaces(ctx)
}

func (s *service) Regions(ctx context.Context, guildID string) ([]RegionStatus, error) {
	regions, claimed, err := s.repo.ListRegions(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	statuses := make([]RegionStatus, 0, len(regions))
	for _, r := range regions {
		statuses = append(statuses, RegionStatus{Region: r, Claimed: claimed[r.ID]})
	}
	return statuses, nil
}

func (s *service) Leaderboard(ctx context.Context, guildID string) ([]repository.LeaderboardEntry, error) {
	return s.repo.Leaderboard(ctx, guildID, DefaultLeaderboardLimit)
}

func (s *service) buildingCatalog(ctx context.Context) (map[string]domain.Building, error) {
	list, err := s.repo.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	catalog := make(map[string]domain.Building, len(list))
	for _, b := range list {
		catalog[b.Name] = b
	}
	return catalog, nil
}

func buildingStatus(b domain.Building, level int) *BuildingStatus {
	status := &BuildingStatus{Building: b, Level: level}
	if level == 0 && len(b.LevelCosts) > 0 {
		status.NextCost = b.LevelCosts[0]
	} else if level > 0 && level < b.MaxLevel && level <= len(b.LevelCosts) {
		status.NextCost = b.LevelCosts[level-1]
	}
	return status
}
