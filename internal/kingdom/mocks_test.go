package kingdom

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/repository"
)

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(ctx context.Context, discordID, username string) (*domain.User, error) {
	args := m.Called(ctx, discordID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateWallet(ctx context.Context, userID, wallet string, changedAt time.Time) error {
	args := m.Called(ctx, userID, wallet, changedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePityState(ctx context.Context, userID string, state domain.PityState) error {
	args := m.Called(ctx, userID, state)
	return args.Error(0)
}

// MockKingdomRepository
type MockKingdomRepository struct {
	mock.Mock
}

func (m *MockKingdomRepository) CreatePlayer(ctx context.Context, player domain.Player) (string, error) {
	args := m.Called(ctx, player)
	return args.String(0), args.Error(1)
}

func (m *MockKingdomRepository) GetPlayer(ctx context.Context, userID, guildID string) (*domain.Player, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockKingdomRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockKingdomRepository) UpdatePlayer(ctx context.Context, player domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockKingdomRepository) UpgradeBuilding(ctx context.Context, playerID, buildingName string, cost domain.Resources, newLevel int) error {
	args := m.Called(ctx, playerID, buildingName, cost, newLevel)
	return args.Error(0)
}

func (m *MockKingdomRepository) GetPlayerBuildings(ctx context.Context, playerID string) ([]domain.PlayerBuilding, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlayerBuilding), args.Error(1)
}

func (m *MockKingdomRepository) AddPlayerBuilding(ctx context.Context, playerID, buildingName string) error {
	args := m.Called(ctx, playerID, buildingName)
	return args.Error(0)
}

func (m *MockKingdomRepository) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Building), args.Error(1)
}

func (m *MockKingdomRepository) GetBuilding(ctx context.Context, name string) (*domain.Building, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockKingdomRepository) ListRaces(ctx context.Context) ([]domain.Race, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Race), args.Error(1)
}

func (m *MockKingdomRepository) ListRegions(ctx context.Context, guildID string) ([]domain.Region, map[string]bool, error) {
	args := m.Called(ctx, guildID)
	var regions []domain.Region
	if args.Get(0) != nil {
		regions = args.Get(0).([]domain.Region)
	}
	var claimed map[string]bool
	if args.Get(1) != nil {
		claimed = args.Get(1).(map[string]bool)
	}
	return regions, claimed, args.Error(2)
}

func (m *MockKingdomRepository) Leaderboard(ctx context.Context, guildID string, limit int) ([]repository.LeaderboardEntry, error) {
	args := m.Called(ctx, guildID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LeaderboardEntry), args.Error(1)
}
