package army

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/kingdomroll/internal/domain"
)

var armyNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestService(userRepo *MockUserRepository, kingdomRepo *MockKingdomRepository, repo *MockArmyRepository) *service {
	return &service{
		userRepo:    userRepo,
		kingdomRepo: kingdomRepo,
		repo:        repo,
		now:         func() time.Time { return armyNow },
	}
}

func catalog() []domain.Troop {
	return []domain.Troop{
		{Name: "militia", Attack: 3, Defense: 5, Cost: domain.Resources{domain.ResourceGold: 20, domain.ResourceFood: 10}, BaseLevelReq: 1},
		{Name: "cavalry", Attack: 10, Defense: 6, Cost: domain.Resources{domain.ResourceGold: 80, domain.ResourceFood: 30}, BaseLevelReq: 3},
	}
}

func TestRecruit(t *testing.T) {
	userRepo := new(MockUserRepository)
	kingdomRepo := new(MockKingdomRepository)
	repo := new(MockArmyRepository)
	svc := newTestService(userRepo, kingdomRepo, repo)

	player := &domain.Player{
		ID:        "p-1",
		BaseLevel: 1,
		Resources: domain.Resources{domain.ResourceGold: 100, domain.ResourceFood: 50},
		Units:     map[string]int{},
	}
	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(player, nil)
	repo.On("GetTroop", mock.Anything, "militia").Return(&catalog()[0], nil)
	repo.On("ListTroops", mock.Anything).Return(catalog(), nil)
	kingdomRepo.On("UpdatePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
		return p.Units["militia"] == 3 &&
			p.Resources[domain.ResourceGold] == 40 &&
			p.Resources[domain.ResourceFood] == 20
	})).Return(nil)

	report, err := svc.Recruit(context.Background(), "d-1", "g-1", "militia", 3)

	require.NoError(t, err)
	assert.Equal(t, 24, report.TotalPower)
	kingdomRepo.AssertExpectations(t)
}

func TestRecruit_BaseLevelTooLow(t *testing.T) {
	userRepo := new(MockUserRepository)
	kingdomRepo := new(MockKingdomRepository)
	repo := new(MockArmyRepository)
	svc := newTestService(userRepo, kingdomRepo, repo)

	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID:        "p-1",
		BaseLevel: 1,
		Resources: domain.Resources{domain.ResourceGold: 1000, domain.ResourceFood: 1000},
	}, nil)
	repo.On("GetTroop", mock.Anything, "cavalry").Return(&catalog()[1], nil)

	_, err := svc.Recruit(context.Background(), "d-1", "g-1", "cavalry", 1)

	assert.ErrorIs(t, err, domain.ErrBaseLevelTooLow)
}

func TestRecruit_InsufficientFunds(t *testing.T) {
	userRepo := new(MockUserRepository)
	kingdomRepo := new(MockKingdomRepository)
	repo := new(MockArmyRepository)
	svc := newTestService(userRepo, kingdomRepo, repo)

	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID:        "p-1",
		BaseLevel: 1,
		Resources: domain.Resources{domain.ResourceGold: 30, domain.ResourceFood: 5},
	}, nil)
	repo.On("GetTroop", mock.Anything, "militia").Return(&catalog()[0], nil)

	_, err := svc.Recruit(context.Background(), "d-1", "g-1", "militia", 2)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	kingdomRepo.AssertNotCalled(t, "UpdatePlayer", mock.Anything, mock.Anything)
}

func TestRecruit_CountBounds(t *testing.T) {
	svc := newTestService(new(MockUserRepository), new(MockKingdomRepository), new(MockArmyRepository))

	_, err := svc.Recruit(context.Background(), "d-1", "g-1", "militia", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Recruit(context.Background(), "d-1", "g-1", "militia", MaxRecruitCount+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScout(t *testing.T) {
	userRepo := new(MockUserRepository)
	kingdomRepo := new(MockKingdomRepository)
	repo := new(MockArmyRepository)
	svc := newTestService(userRepo, kingdomRepo, repo)

	player := &domain.Player{ID: "p-1", Stamina: 100, StaminaUpdatedAt: armyNow}
	target := &domain.Player{ID: "p-2", Race: "Orc", RegionID: "south", Units: map[string]int{"militia": 5}}

	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	userRepo.On("GetByDiscordID", mock.Anything, "d-2").Return(&domain.User{InternalID: "u-2", Username: "bob"}, nil)
	kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(player, nil)
	kingdomRepo.On("GetPlayer", mock.Anything, "u-2", "g-1").Return(target, nil)
	repo.On("ListTroops", mock.Anything).Return(catalog(), nil)
	kingdomRepo.On("UpdatePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
		return p.ID == "p-1" && p.Stamina == 100-domain.StaminaCostScout && p.LastScoutAt != nil
	})).Return(nil)

	report, err := svc.Scout(context.Background(), "d-1", "g-1", "d-2")

	require.NoError(t, err)
	assert.Equal(t, "bob", report.TargetUsername)
	assert.Equal(t, 40, report.Army.TotalPower)
	assert.Equal(t, 100-domain.StaminaCostScout, report.StaminaLeft)
}

func TestScout_Cooldown(t *testing.T) {
	userRepo := new(MockUserRepository)
	kingdomRepo := new(MockKingdomRepository)
	svc := newTestService(userRepo, kingdomRepo, new(MockArmyRepository))

	recent := armyNow.Add(-10 * time.Minute)
	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID: "p-1", Stamina: 100, StaminaUpdatedAt: armyNow, LastScoutAt: &recent,
	}, nil)

	_, err := svc.Scout(context.Background(), "d-1", "g-1", "d-2")

	assert.ErrorIs(t, err, domain.ErrScoutOnCooldown)
}

func TestScout_InsufficientStamina(t *testing.T) {
	userRepo := new(MockUserRepository)
	kingdomRepo := new(MockKingdomRepository)
	svc := newTestService(userRepo, kingdomRepo, new(MockArmyRepository))

	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID: "p-1", Stamina: 10, StaminaUpdatedAt: armyNow,
	}, nil)

	_, err := svc.Scout(context.Background(), "d-1", "g-1", "d-2")

	assert.ErrorIs(t, err, domain.ErrInsufficientStamina)
}

func TestScout_TargetWithoutKingdom(t *testing.T) {
	userRepo := new(MockUserRepository)
	kingdomRepo := new(MockKingdomRepository)
	svc := newTestService(userRepo, kingdomRepo, new(MockArmyRepository))

	userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	userRepo.On("GetByDiscordID", mock.Anything, "d-2").Return(&domain.User{InternalID: "u-2"}, nil)
	kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID: "p-1", Stamina: 100, StaminaUpdatedAt: armyNow,
	}, nil)
	kingdomRepo.On("GetPlayer", mock.Anything, "u-2", "g-1").Return(nil, domain.ErrPlayerNotFound)

	_, err := svc.Scout(context.Background(), "d-1", "g-1", "d-2")

	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}
