package kingdom

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/event"
)

var kingdomNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestService(userRepo *MockUserRepository, repo *MockKingdomRepository) *service {
	return &service{
		userRepo:           userRepo,
		repo:               repo,
		eventBus:           event.NewMemoryBus(),
		collectMinInterval: time.Hour,
		now:                func() time.Time { return kingdomNow },
	}
}

func testRaces() []domain.Race {
	return []domain.Race{{Name: "Human"}, {Name: "Orc"}}
}

func testRegions() []domain.Region {
	return []domain.Region{{ID: "north", Name: "Northlands"}, {ID: "south", Name: "Southreach"}}
}

func TestStart(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	userRepo.On("EnsureUser", mock.Anything, "d-1", "alice").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("ListRaces", mock.Anything).Return(testRaces(), nil)
	repo.On("ListRegions", mock.Anything, "g-1").Return(testRegions(), map[string]bool{"south": true}, nil)
	repo.On("CreatePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
		return p.UserID == "u-1" && p.Race == "Human" && p.RegionID == "north" &&
			p.Stamina == domain.StaminaMax && p.BaseLevel == 1 &&
			p.Resources[domain.ResourceGold] == StartingResources[domain.ResourceGold]
	})).Return("p-1", nil)
	for _, name := range StartingBuildings {
		repo.On("AddPlayerBuilding", mock.Anything, "p-1", name).Return(nil)
	}

	player, err := svc.Start(context.Background(), "d-1", "alice", "g-1", "human", "north")

	require.NoError(t, err)
	assert.Equal(t, "p-1", player.ID)
	repo.AssertExpectations(t)
}

func TestStart_RegionTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	userRepo.On("EnsureUser", mock.Anything, "d-1", "alice").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("ListRaces", mock.Anything).Return(testRaces(), nil)
	repo.On("ListRegions", mock.Anything, "g-1").Return(testRegions(), map[string]bool{"north": true}, nil)

	_, err := svc.Start(context.Background(), "d-1", "alice", "g-1", "Human", "north")

	assert.ErrorIs(t, err, domain.ErrRegionTaken)
	repo.AssertNotCalled(t, "CreatePlayer", mock.Anything, mock.Anything)
}

func TestStart_UnknownRace(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	userRepo.On("EnsureUser", mock.Anything, "d-1", "alice").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("ListRaces", mock.Anything).Return(testRaces(), nil)

	_, err := svc.Start(context.Background(), "d-1", "alice", "g-1", "Elf", "north")

	assert.ErrorIs(t, err, domain.ErrRaceNotFound)
}

func TestCollect(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	last := kingdomNow.Add(-3 * time.Hour)
	player := &domain.Player{
		ID:              "p-1",
		UserID:          "u-1",
		GuildID:         "g-1",
		Resources:       domain.Resources{domain.ResourceGold: 100},
		LastCollectedAt: &last,
	}
	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(player, nil)
	repo.On("GetPlayerBuildings", mock.Anything, "p-1").Return([]domain.PlayerBuilding{
		{PlayerID: "p-1", BuildingName: "farm", Level: 2},
		{PlayerID: "p-1", BuildingName: "mine", Level: 1},
	}, nil)
	repo.On("ListBuildings", mock.Anything).Return([]domain.Building{
		{Name: "farm", Production: domain.Resources{domain.ResourceFood: 10}},
		{Name: "mine", Production: domain.Resources{domain.ResourceGold: 8}},
	}, nil)
	repo.On("UpdatePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
		// 3h of farm level 2 and mine level 1 on top of the prior balance
		return p.Resources[domain.ResourceFood] == 60 &&
			p.Resources[domain.ResourceGold] == 124 &&
			p.LastCollectedAt != nil && p.LastCollectedAt.Equal(kingdomNow)
	})).Return(nil)

	gained, err := svc.Collect(context.Background(), "d-1", "g-1")

	require.NoError(t, err)
	assert.Equal(t, 60, gained[domain.ResourceFood])
	assert.Equal(t, 24, gained[domain.ResourceGold])
	repo.AssertExpectations(t)
}

func TestCollect_TooSoon(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	last := kingdomNow.Add(-20 * time.Minute)
	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{ID: "p-1", LastCollectedAt: &last}, nil)

	_, err := svc.Collect(context.Background(), "d-1", "g-1")

	assert.ErrorIs(t, err, domain.ErrCollectTooSoon)
}

func TestCollect_CapsAtOneDay(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	last := kingdomNow.Add(-72 * time.Hour)
	player := &domain.Player{
		ID:              "p-1",
		Resources:       domain.Resources{},
		LastCollectedAt: &last,
	}
	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(player, nil)
	repo.On("GetPlayerBuildings", mock.Anything, "p-1").Return([]domain.PlayerBuilding{
		{PlayerID: "p-1", BuildingName: "farm", Level: 1},
	}, nil)
	repo.On("ListBuildings", mock.Anything).Return([]domain.Building{
		{Name: "farm", Production: domain.Resources{domain.ResourceFood: 10}},
	}, nil)
	repo.On("UpdatePlayer", mock.Anything, mock.Anything).Return(nil)

	gained, err := svc.Collect(context.Background(), "d-1", "g-1")

	require.NoError(t, err)
	assert.Equal(t, 10*CollectCapHours, gained[domain.ResourceFood])
}

func TestUpgrade(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	building := &domain.Building{
		Name:     "farm",
		MaxLevel: 10,
		LevelCosts: []domain.Resources{
			{domain.ResourceGold: 50},
			{domain.ResourceGold: 100},
		},
	}
	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID:        "p-1",
		Resources: domain.Resources{domain.ResourceGold: 500},
	}, nil)
	repo.On("GetBuilding", mock.Anything, "farm").Return(building, nil)
	repo.On("GetPlayerBuildings", mock.Anything, "p-1").Return([]domain.PlayerBuilding{
		{PlayerID: "p-1", BuildingName: "farm", Level: 2},
	}, nil)
	repo.On("UpgradeBuilding", mock.Anything, "p-1", "farm", domain.Resources{domain.ResourceGold: 100}, 3).Return(nil)

	status, err := svc.Upgrade(context.Background(), "d-1", "g-1", "farm")

	require.NoError(t, err)
	assert.Equal(t, 3, status.Level)
	repo.AssertExpectations(t)
}

func TestUpgrade_ConstructsUnowned(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	building := &domain.Building{
		Name:       "quarry",
		MaxLevel:   10,
		LevelCosts: []domain.Resources{{domain.ResourceGold: 70}},
	}
	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID:        "p-1",
		Resources: domain.Resources{domain.ResourceGold: 100},
	}, nil)
	repo.On("GetBuilding", mock.Anything, "quarry").Return(building, nil)
	repo.On("GetPlayerBuildings", mock.Anything, "p-1").Return([]domain.PlayerBuilding{}, nil)
	repo.On("UpdatePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
		return p.Resources[domain.ResourceGold] == 30
	})).Return(nil)
	repo.On("AddPlayerBuilding", mock.Anything, "p-1", "quarry").Return(nil)

	status, err := svc.Upgrade(context.Background(), "d-1", "g-1", "quarry")

	require.NoError(t, err)
	assert.Equal(t, 1, status.Level)
	repo.AssertExpectations(t)
}

func TestUpgrade_MaxLevel(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	building := &domain.Building{
		Name:       "farm",
		MaxLevel:   2,
		LevelCosts: []domain.Resources{{domain.ResourceGold: 50}},
	}
	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID:        "p-1",
		Resources: domain.Resources{domain.ResourceGold: 500},
	}, nil)
	repo.On("GetBuilding", mock.Anything, "farm").Return(building, nil)
	repo.On("GetPlayerBuildings", mock.Anything, "p-1").Return([]domain.PlayerBuilding{
		{PlayerID: "p-1", BuildingName: "farm", Level: 2},
	}, nil)

	_, err := svc.Upgrade(context.Background(), "d-1", "g-1", "farm")

	assert.ErrorIs(t, err, domain.ErrBuildingMaxLevel)
}

func TestUpgrade_InsufficientFunds(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	building := &domain.Building{
		Name:       "farm",
		MaxLevel:   10,
		LevelCosts: []domain.Resources{{domain.ResourceGold: 50}},
	}
	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID:        "p-1",
		Resources: domain.Resources{domain.ResourceGold: 10},
	}, nil)
	repo.On("GetBuilding", mock.Anything, "farm").Return(building, nil)
	repo.On("GetPlayerBuildings", mock.Anything, "p-1").Return([]domain.PlayerBuilding{
		{PlayerID: "p-1", BuildingName: "farm", Level: 1},
	}, nil)

	_, err := svc.Upgrade(context.Background(), "d-1", "g-1", "farm")

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	repo.AssertNotCalled(t, "UpgradeBuilding", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOverview_NoKingdom(t *testing.T) {
	userRepo := new(MockUserRepository)
	repo := new(MockKingdomRepository)
	svc := newTestService(userRepo, repo)

	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	repo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(nil, domain.ErrPlayerNotFound)

	_, err := svc.Overview(context.Background(), "d-1", "g-1")

	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
