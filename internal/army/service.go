// Package army covers troop recruitment and scouting of rival kingdoms.
package army

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/kingdom"
	"github.com/osse101/kingdomroll/internal/logger"
	"github.com/osse101/kingdomroll/internal/repository"
)

// UnitStatus is one troop line in an army report.
type UnitStatus struct {
	Troop domain.Troop
	Count int
	Power int
}

// Report summarizes an army.
type Report struct {
	Units      []UnitStatus
	TotalPower int
}

// ScoutReport is what a scouting mission reveals about a rival.
type ScoutReport struct {
	TargetUsername string
	TargetRace     string
	TargetRegionID string
	Army           Report
	StaminaLeft    int
}

// Service defines the interface for army operations
type Service interface {
	// Recruit trains count units of a troop type
	Recruit(ctx context.Context, discordID, guildID, troopName string, count int) (*Report, error)

	// Army returns the player's current army report
	Army(ctx context.Context, discordID, guildID string) (*Report, error)

	// Scout spends stamina to reveal a rival player's army
	Scout(ctx context.Context, discordID, guildID, targetDiscordID string) (*ScoutReport, error)

	// Troops lists the recruitable troop catalog
	Troops(ctx context.Context) ([]domain.Troop, error)
}

type service struct {
	userRepo    repository.User
	kingdomRepo repository.Kingdom
	repo        repository.Army
	now         func() time.Time
}

// NewService creates a new army service
func NewService(userRepo repository.User, kingdomRepo repository.Kingdom, repo repository.Army) Service {
	return &service{
		userRepo:    userRepo,
		kingdomRepo: kingdomRepo,
		repo:        repo,
		now:         time.Now,
	}
}

func (s *service) player(ctx context.Context, discordID, guildID string) (*domain.Player, error) {
	user, err := s.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	return s.kingdomRepo.GetPlayer(ctx, user.InternalID, guildID)
}

func (s *service) Recruit(ctx context.Context, discordID, guildID, troopName string, count int) (*Report, error) {
	log := logger.FromContext(ctx)

	if count < 1 || count > MaxRecruitCount {
		return nil, domain.ErrInvalidInput
	}

	player, err := s.player(ctx, discordID, guildID)
	if err != nil {
		return nil, err
	}
	troop, err := s.repo.GetTroop(ctx, troopName)
	if err != nil {
		return nil, err
	}
	if player.BaseLevel < troop.BaseLevelReq {
		return nil, domain.ErrBaseLevelTooLow
	}

	cost := domain.Resources{}
	for res, amount := range troop.Cost {
		cost[res] = amount * count
	}
	if !player.Resources.CanAfford(cost) {
		return nil, domain.ErrInsufficientFunds
	}
	player.Resources.Subtract(cost)
	if player.Units == nil {
		player.Units = map[string]int{}
	}
	player.Units[troop.Name] += count

	if err := s.kingdomRepo.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}

	log.Info(LogMsgTroopsRecruited, "player_id", player.ID, "troop", troop.Name, "count", count)
	return s.report(ctx, player)
}

func (s *service) Army(ctx context.Context, discordID, guildID string) (*Report, error) {
	player, err := s.player(ctx, discordID, guildID)
	if err != nil {
		return nil, err
	}
	return s.report(ctx, player)
}

func (s *service) Scout(ctx context.Context, discordID, guildID, targetDiscordID string) (*ScoutReport, error) {
	log := logger.FromContext(ctx)

	player, err := s.player(ctx, discordID, guildID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if player.LastScoutAt != nil && now.Sub(*player.LastScoutAt) < ScoutCooldown {
		return nil, domain.ErrScoutOnCooldown
	}
	if err := kingdom.SpendStamina(player, domain.StaminaCostScout, now); err != nil {
		return nil, err
	}

	targetUser, err := s.userRepo.GetByDiscordID(ctx, targetDiscordID)
	if err != nil {
		return nil, domain.ErrTargetNotFound
	}
	target, err := s.kingdomRepo.GetPlayer(ctx, targetUser.InternalID, guildID)
	if err != nil {
		return nil, domain.ErrTargetNotFound
	}

	player.LastScoutAt = &now
	if err := s.kingdomRepo.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}

	targetReport, err := s.report(ctx, target)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgScoutDispatched, "player_id", player.ID, "target_player_id", target.ID)
	return &ScoutReport{
		TargetUsername: targetUser.Username,
		TargetRace:     target.Race,
		TargetRegionID: target.RegionID,
		Army:           *targetReport,
		StaminaLeft:    player.Stamina,
	}, nil
}

func (s *service) Troops(ctx context.Context) ([]domain.Troop, error) {
	return s.repo.ListTroops(ctx)
}

// report expands a player's unit counts against the troop catalog.
// Power is (attack + defense) per unit times the unit count.
func (s *service) report(ctx context.Context, player *domain.Player) (*Report, error) {
	troops, err := s.repo.ListTroops(ctx)
	if err != nil {
		return nil, fmt.Errorf("list troops: %w", err)
	}

	report := &Report{}
	for _, troop := range troops {
		count := player.Units[troop.Name]
		if count == 0 {
			continue
		}
		power := (troop.Attack + troop.Defense) * count
		report.Units = append(report.Units, UnitStatus{Troop: troop, Count: count, Power: power})
		report.TotalPower += power
	}
	return report, nil
}
