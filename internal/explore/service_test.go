package explore

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

var exploreNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

type testMocks struct {
	userRepo      *MockUserRepository
	kingdomRepo   *MockKingdomRepository
	taskRepo      *MockTaskRepository
	encounterRepo *MockEncounterRepository
}

func newTestService(rng func() float64) (*service, *testMocks) {
	m := &testMocks{
		userRepo:      new(MockUserRepository),
		kingdomRepo:   new(MockKingdomRepository),
		taskRepo:      new(MockTaskRepository),
		encounterRepo: new(MockEncounterRepository),
	}
	return &service{
		userRepo:      m.userRepo,
		kingdomRepo:   m.kingdomRepo,
		taskRepo:      m.taskRepo,
		encounterRepo: m.encounterRepo,
		eventBus:      event.NewMemoryBus(),
		duration:      30 * time.Minute,
		rng:           rng,
		now:           func() time.Time { return exploreNow },
	}, m
}

func encounters() []domain.Encounter {
	return []domain.Encounter{
		{ID: "cache", Probability: 0.6, Resources: domain.Resources{domain.ResourceGold: 40}},
		{ID: "herd", Probability: 0.3, Resources: domain.Resources{domain.ResourceFood: 60}},
		{ID: "soldiers", Probability: 0.1, Troops: map[string]int{"militia": 3}},
	}
}

func TestBegin(t *testing.T) {
	svc, m := newTestService(nil)

	player := &domain.Player{ID: "p-1", Stamina: 100, StaminaUpdatedAt: exploreNow}
	m.userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	m.kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(player, nil)
	m.taskRepo.On("FindPendingByPlayer", mock.Anything, "p-1", domain.TaskKindExplore).Return(nil, domain.ErrTaskNotFound)
	m.kingdomRepo.On("UpdatePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
		return p.Stamina == 100-domain.StaminaCostExplore
	})).Return(nil)
	m.taskRepo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task domain.ScheduledTask) bool {
		return task.Kind == domain.TaskKindExplore && task.PlayerID == "p-1" &&
			task.DueAt.Equal(exploreNow.Add(30*time.Minute))
	})).Return("t-1", nil)

	task, err := svc.Begin(context.Background(), "d-1", "g-1")

	require.NoError(t, err)
	assert.Equal(t, "t-1", task.ID)
	m.taskRepo.AssertExpectations(t)
}

func TestBegin_AlreadyExploring(t *testing.T) {
	svc, m := newTestService(nil)

	m.userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	m.kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{ID: "p-1", Stamina: 100}, nil)
	m.taskRepo.On("FindPendingByPlayer", mock.Anything, "p-1", domain.TaskKindExplore).
		Return(&domain.ScheduledTask{ID: "t-0", PlayerID: "p-1"}, nil)

	_, err := svc.Begin(context.Background(), "d-1", "g-1")

	assert.ErrorIs(t, err, domain.ErrExploreInProgress)
	m.taskRepo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestBegin_InsufficientStamina(t *testing.T) {
	svc, m := newTestService(nil)

	m.userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	m.kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{
		ID: "p-1", Stamina: 5, StaminaUpdatedAt: exploreNow,
	}, nil)
	m.taskRepo.On("FindPendingByPlayer", mock.Anything, "p-1", domain.TaskKindExplore).Return(nil, domain.ErrTaskNotFound)

	_, err := svc.Begin(context.Background(), "d-1", "g-1")

	assert.ErrorIs(t, err, domain.ErrInsufficientStamina)
}

func TestResolve(t *testing.T) {
	// 0.7 falls in the second probability band
	svc, m := newTestService(func() float64 { return 0.7 })

	task := &domain.ScheduledTask{ID: "t-1", Kind: domain.TaskKindExplore, PlayerID: "p-1", DueAt: exploreNow}
	player := &domain.Player{ID: "p-1", Resources: domain.Resources{domain.ResourceFood: 10}}

	m.taskRepo.On("GetTask", mock.Anything, "t-1").Return(task, nil)
	m.taskRepo.On("CompleteTask", mock.Anything, "t-1").Return(nil)
	m.encounterRepo.On("ListEncounters", mock.Anything).Return(encounters(), nil)
	m.kingdomRepo.On("GetPlayerByID", mock.Anything, "p-1").Return(player, nil)
	m.kingdomRepo.On("UpdatePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
		return p.Resources[domain.ResourceFood] == 70
	})).Return(nil)

	outcome, err := svc.Resolve(context.Background(), "t-1")

	require.NoError(t, err)
	assert.Equal(t, "herd", outcome.Encounter.ID)
	m.kingdomRepo.AssertExpectations(t)
}

func TestResolve_TroopReward(t *testing.T) {
	svc, m := newTestService(func() float64 { return 0.95 })

	task := &domain.ScheduledTask{ID: "t-1", Kind: domain.TaskKindExplore, PlayerID: "p-1", DueAt: exploreNow}
	player := &domain.Player{ID: "p-1", Resources: domain.Resources{}}

	m.taskRepo.On("GetTask", mock.Anything, "t-1").Return(task, nil)
	m.taskRepo.On("CompleteTask", mock.Anything, "t-1").Return(nil)
	m.encounterRepo.On("ListEncounters", mock.Anything).Return(encounters(), nil)
	m.kingdomRepo.On("GetPlayerByID", mock.Anything, "p-1").Return(player, nil)
	m.kingdomRepo.On("UpdatePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
		return p.Units["militia"] == 3
	})).Return(nil)

	outcome, err := svc.Resolve(context.Background(), "t-1")

	require.NoError(t, err)
	assert.Equal(t, "soldiers", outcome.Encounter.ID)
}

func TestResolve_AlreadyCompleted(t *testing.T) {
	svc, m := newTestService(nil)

	done := exploreNow.Add(-time.Minute)
	m.taskRepo.On("GetTask", mock.Anything, "t-1").Return(&domain.ScheduledTask{
		ID: "t-1", PlayerID: "p-1", CompletedAt: &done,
	}, nil)

	_, err := svc.Resolve(context.Background(), "t-1")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	m.taskRepo.AssertNotCalled(t, "CompleteTask", mock.Anything, mock.Anything)
}

func TestResolve_ClaimRace(t *testing.T) {
	svc, m := newTestService(nil)

	task := &domain.ScheduledTask{ID: "t-1", Kind: domain.TaskKindExplore, PlayerID: "p-1", DueAt: exploreNow}
	m.taskRepo.On("GetTask", mock.Anything, "t-1").Return(task, nil)
	m.taskRepo.On("CompleteTask", mock.Anything, "t-1").Return(domain.ErrTaskNotFound)

	_, err := svc.Resolve(context.Background(), "t-1")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	m.kingdomRepo.AssertNotCalled(t, "GetPlayerByID", mock.Anything, mock.Anything)
}

func TestStatus(t *testing.T) {
	svc, m := newTestService(nil)

	pending := &domain.ScheduledTask{ID: "t-1", PlayerID: "p-1", DueAt: exploreNow.Add(10 * time.Minute)}
	m.userRepo.On("GetByDiscordID", mock.Anything, "d-1").Return(&domain.User{InternalID: "u-1"}, nil)
	m.kingdomRepo.On("GetPlayer", mock.Anything, "u-1", "g-1").Return(&domain.Player{ID: "p-1"}, nil)
	m.taskRepo.On("FindPendingByPlayer", mock.Anything, "p-1", domain.TaskKindExplore).Return(pending, nil)

	task, err := svc.Status(context.Background(), "d-1", "g-1")

	require.NoError(t, err)
	assert.Equal(t, "t-1", task.ID)
}
