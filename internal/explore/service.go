// Package explore implements delayed exploration missions. A mission is a
// durable scheduled task: it survives restarts and is resolved by the
// worker when its due time passes.
package explore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/event"
	"github.com/osse101/kingdomroll/internal/kingdom"
	"github.com/osse101/kingdomroll/internal/logger"
	"github.com/osse101/kingdomroll/internal/repository"
	"github.com/osse101/kingdomroll/internal/utils"
)

// Outcome is the resolved result of an exploration.
type Outcome struct {
	PlayerID  string
	Encounter domain.Encounter
}

// Service defines the interface for exploration operations
type Service interface {
	// Begin spends stamina and schedules a mission for the player
	Begin(ctx context.Context, discordID, guildID string) (*domain.ScheduledTask, error)

	// Resolve claims a due task and applies its encounter rewards.
	// A task that was already resolved returns domain.ErrTaskNotFound.
	Resolve(ctx context.Context, taskID string) (*Outcome, error)

	// Status returns the player's pending mission or domain.ErrTaskNotFound
	Status(ctx context.Context, discordID, guildID string) (*domain.ScheduledTask, error)

	// PendingTasks lists unresolved missions for startup recovery
	PendingTasks(ctx context.Context) ([]domain.ScheduledTask, error)
}

type service struct {
	userRepo      repository.User
	kingdomRepo   repository.Kingdom
	taskRepo      repository.Task
	encounterRepo repository.Encounter
	eventBus      event.Bus
	duration      time.Duration
	rng           func() float64 // Injectable for testing
	now           func() time.Time
}

// NewService creates a new explore service
func NewService(userRepo repository.User, kingdomRepo repository.Kingdom, taskRepo repository.Task, encounterRepo repository.Encounter, eventBus event.Bus, duration time.Duration) Service {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &service{
		userRepo:      userRepo,
		kingdomRepo:   kingdomRepo,
		taskRepo:      taskRepo,
		encounterRepo: encounterRepo,
		eventBus:      eventBus,
		duration:      duration,
		rng:           utils.RandomFloat,
		now:           time.Now,
	}
}

func (s *service) Begin(ctx context.Context, discordID, guildID string) (*domain.ScheduledTask, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	player, err := s.kingdomRepo.GetPlayer(ctx, user.InternalID, guildID)
	if err != nil {
		return nil, err
	}

	_, err = s.taskRepo.FindPendingByPlayer(ctx, player.ID, domain.TaskKindExplore)
	if err == nil {
		return nil, domain.ErrExploreInProgress
	}
	if !errors.Is(err, domain.ErrTaskNotFound) {
		return nil, fmt.Errorf("check pending mission: %w", err)
	}

	now := s.now().UTC()
	if err := kingdom.SpendStamina(player, domain.StaminaCostExplore, now); err != nil {
		return nil, err
	}
	if err := s.kingdomRepo.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}

	task := domain.ScheduledTask{
		Kind:      domain.TaskKindExplore,
		PlayerID:  player.ID,
		DueAt:     now.Add(s.duration),
		CreatedAt: now,
	}
	// The task row is the source of truth; the in-memory timer is only an
	// optimization on top of it.
	taskID, err := s.taskRepo.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create mission: %w", err)
	}
	task.ID = taskID

	if err := s.eventBus.Publish(ctx, event.NewExploreScheduledEvent(task)); err != nil {
		log.Warn("Failed to publish explore event", "error", err)
	}
	log.Info(LogMsgExploreScheduled, "task_id", taskID, "player_id", player.ID, "due_at", task.DueAt)

	return &task, nil
}

func (s *service) Resolve(ctx context.Context, taskID string) (*Outcome, error) {
	log := logger.FromContext(ctx)

	task, err := s.taskRepo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.Pending() {
		return nil, domain.ErrTaskNotFound
	}

	// Claim the task before touching player state so a racing worker
	// cannot apply the rewards twice.
	if err := s.taskRepo.CompleteTask(ctx, taskID); err != nil {
		return nil, err
	}

	encounter, err := s.pickEncounter(ctx)
	if err != nil {
		return nil, err
	}

	player, err := s.kingdomRepo.GetPlayerByID(ctx, task.PlayerID)
	if err != nil {
		return nil, err
	}
	player.Resources.Add(encounter.Resources)
	if len(encounter.Troops) > 0 {
		if player.Units == nil {
			player.Units = map[string]int{}
		}
		for troop, count := range encounter.Troops {
			player.Units[troop] += count
		}
	}
	if err := s.kingdomRepo.UpdatePlayer(ctx, *player); err != nil {
		return nil, fmt.Errorf("apply encounter rewards: %w", err)
	}

	if err := s.eventBus.Publish(ctx, event.NewExploreResolvedEvent(taskID, player.ID, encounter.ID)); err != nil {
		log.Warn("Failed to publish explore event", "error", err)
	}
	log.Info(LogMsgExploreResolved, "task_id", taskID, "player_id", player.ID, "encounter", encounter.ID)

	return &Outcome{PlayerID: player.ID, Encounter: *encounter}, nil
}

func (s *service) Status(ctx context.Context, discordID, guildID string) (*domain.ScheduledTask, error) {
	user, err := s.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	player, err := s.kingdomRepo.GetPlayer(ctx, user.InternalID, guildID)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.FindPendingByPlayer(ctx, player.ID, domain.TaskKindExplore)
}

func (s *service) PendingTasks(ctx context.Context) ([]domain.ScheduledTask, error) {
	return s.taskRepo.ListPending(ctx, domain.TaskKindExplore)
}

// pickEncounter draws a weighted encounter. Weights are walked
// cumulatively so they do not need to sum to one.
func (s *service) pickEncounter(ctx context.Context) (*domain.Encounter, error) {
	encounters, err := s.encounterRepo.ListEncounters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list encounters: %w", err)
	}
	if len(encounters) == 0 {
		return nil, domain.ErrNoEncounters
	}

	var total float64
	for _, e := range encounters {
		total += e.Probability
	}

	roll := s.rng() * total
	var cumulative float64
	for i := range encounters {
		cumulative += encounters[i].Probability
		if roll < cumulative {
			return &encounters[i], nil
		}
	}
	return &encounters[len(encounters)-1], nil
}
