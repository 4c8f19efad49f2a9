package roll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/event"
	"github.com/osse101/kingdomroll/internal/logger"
	"github.com/osse101/kingdomroll/internal/pity"
	"github.com/osse101/kingdomroll/internal/repository"
	"github.com/osse101/kingdomroll/internal/tier"
	"github.com/osse101/kingdomroll/internal/utils"
)

// Service defines the interface for roll operations
type Service interface {
	// Roll performs one roll for a user, consuming their daily
	// entitlement first and a granted bonus roll second.
	Roll(ctx context.Context, discordID, username string) (*Result, error)

	// Grant awards count unspent bonus rolls to a user
	Grant(ctx context.Context, targetDiscordID, targetUsername, grantedBy string, count int) (int, error)

	// History returns a page of completed rolls and the total count
	History(ctx context.Context, discordID string, limit, offset int) ([]domain.Roll, int, error)

	// BonusBalance returns how many unspent bonus rolls a user holds
	BonusBalance(ctx context.Context, discordID string) (int, error)
}

// Result is the outcome of a single roll.
type Result struct {
	domain.RollResult
	Detail         tier.Detail
	BonusRemaining int
	PityStreak     int

	rollID string
}

type service struct {
	userRepo repository.User
	rollRepo repository.Roll
	table    *tier.Table
	eventBus event.Bus
	rng      func() float64 // Injectable for testing
	now      func() time.Time
}

// NewService creates a new roll service
func NewService(userRepo repository.User, rollRepo repository.Roll, table *tier.Table, eventBus event.Bus) Service {
	return &service{
		userRepo: userRepo,
		rollRepo: rollRepo,
		table:    table,
		eventBus: eventBus,
		rng:      utils.RandomFloat,
		now:      time.Now,
	}
}

func (s *service) Roll(ctx context.Context, discordID, username string) (*Result, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepo.EnsureUser(ctx, discordID, username)
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}
	if user.Wallet == "" {
		return nil, domain.ErrWalletMissing
	}

	if err := s.rollRepo.AcquireLock(ctx, user.InternalID); err != nil {
		return nil, err
	}
	defer func() {
		if err := s.rollRepo.ReleaseLock(context.WithoutCancel(ctx), user.InternalID); err != nil {
			log.Error(LogMsgLockReleaseFailed, "user_id", user.InternalID, "error", err)
		}
	}()

	now := s.now().UTC()

	var (
		detail   tier.Detail
		isPity   bool
		newState domain.PityState
	)
	if pity.ShouldAward(user.Pity, now) {
		detail = s.table.Top()
		isPity = true
		newState = pity.Award(user.Pity, now)
	} else {
		detail = s.table.Pick(s.rng)
		newState = pity.NextState(user.Pity, detail.Tier, now)
	}

	result, err := s.recordRoll(ctx, user, detail.Tier, isPity, now)
	if err != nil {
		return nil, err
	}
	result.Detail = detail
	result.PityStreak = newState.Streak

	// The roll outcome is already durable. A prize or pity write failure
	// must not undo it, so both are logged and the result returned as-is.
	if detail.Tier >= PrizeTierThreshold || isPity {
		prize := domain.Prize{
			UserID:    user.InternalID,
			Username:  user.Username,
			Wallet:    user.Wallet,
			Tier:      detail.Tier,
			TierLabel: detail.Label,
			WonAt:     now,
		}
		if err := s.rollRepo.InsertPrize(ctx, prize); err != nil {
			log.Error(LogMsgPrizeWriteFailed, "user_id", user.InternalID, "tier", detail.Tier, "error", err)
		}
	}

	if err := s.userRepo.UpdatePityState(ctx, user.InternalID, newState); err != nil {
		log.Error(LogMsgPityPersistFailed, "user_id", user.InternalID, "error", err)
	}

	if remaining, err := s.rollRepo.CountUnspentBonus(ctx, user.InternalID); err == nil {
		result.BonusRemaining = remaining
	}

	if err := s.eventBus.Publish(ctx, event.NewRollCompletedEvent(result.rollID, user.InternalID, user.Username, result.RollResult)); err != nil {
		log.Warn("Failed to publish roll event", "error", err)
	}

	if isPity {
		log.Info(LogMsgPityAwarded, "user_id", user.InternalID, "tier", detail.Tier)
	}
	log.Info(LogMsgRollCompleted, "user_id", user.InternalID, "tier", detail.Tier, "source", result.Source, "pity", isPity)

	return result, nil
}

// recordRoll consumes the user's entitlement for today. The daily roll is
// spent first; after that the oldest unspent bonus roll is filled in.
func (s *service) recordRoll(ctx context.Context, user *domain.User, tierWon int, isPity bool, now time.Time) (*Result, error) {
	hasDaily, err := s.rollRepo.HasDailyRoll(ctx, user.InternalID, now)
	if err != nil {
		return nil, fmt.Errorf("check daily roll: %w", err)
	}

	if !hasDaily {
		id, err := s.rollRepo.InsertRoll(ctx, domain.Roll{
			UserID:   user.InternalID,
			Source:   domain.RollSourceDaily,
			TierWon:  &tierWon,
			IsPity:   isPity,
			RollDate: now,
			RolledAt: now,
		})
		if err != nil {
			// A concurrent daily insert loses the race at the unique index
			if errors.Is(err, domain.ErrDailyRollUsed) {
				return nil, err
			}
			return nil, fmt.Errorf("insert daily roll: %w", err)
		}
		return &Result{
			RollResult: domain.RollResult{Tier: tierWon, IsPity: isPity, Source: domain.RollSourceDaily},
			rollID:     id,
		}, nil
	}

	bonus, err := s.rollRepo.FindUnspentBonus(ctx, user.InternalID)
	if err != nil {
		if errors.Is(err, domain.ErrNoBonusRolls) {
			return nil, domain.ErrDailyRollUsed
		}
		return nil, fmt.Errorf("find bonus roll: %w", err)
	}
	if err := s.rollRepo.SpendBonusRoll(ctx, bonus.ID, tierWon, isPity, now); err != nil {
		return nil, fmt.Errorf("spend bonus roll: %w", err)
	}
	return &Result{
		RollResult: domain.RollResult{Tier: tierWon, IsPity: isPity, Source: domain.RollSourceBonus},
		rollID:     bonus.ID,
	}, nil
}

func (s *service) Grant(ctx context.Context, targetDiscordID, targetUsername, grantedBy string, count int) (int, error) {
	log := logger.FromContext(ctx)

	if count < 1 || count > MaxBonusGrant {
		return 0, domain.ErrTooManyBonusRolls
	}

	user, err := s.userRepo.EnsureUser(ctx, targetDiscordID, targetUsername)
	if err != nil {
		return 0, fmt.Errorf("ensure user: %w", err)
	}

	unspent, err := s.rollRepo.CountUnspentBonus(ctx, user.InternalID)
	if err != nil {
		return 0, fmt.Errorf("count bonus rolls: %w", err)
	}
	if unspent+count > MaxUnspentBonus {
		return 0, domain.ErrTooManyBonusRolls
	}

	now := s.now().UTC()
	for i := 0; i < count; i++ {
		if _, err := s.rollRepo.InsertRoll(ctx, domain.Roll{
			UserID:    user.InternalID,
			Source:    domain.RollSourceBonus,
			GrantedBy: grantedBy,
			RollDate:  now,
			RolledAt:  now,
		}); err != nil {
			return 0, fmt.Errorf("grant bonus roll: %w", err)
		}
	}

	if err := s.eventBus.Publish(ctx, event.NewBonusRollGrantedEvent(user.InternalID, grantedBy, count)); err != nil {
		log.Warn("Failed to publish grant event", "error", err)
	}
	log.Info(LogMsgBonusGranted, "user_id", user.InternalID, "granted_by", grantedBy, "count", count)

	return unspent + count, nil
}

func (s *service) History(ctx context.Context, discordID string, limit, offset int) ([]domain.Roll, int, error) {
	user, err := s.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, 0, err
	}
	rolls, err := s.rollRepo.ListByUser(ctx, user.InternalID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list rolls: %w", err)
	}
	total, err := s.rollRepo.CountByUser(ctx, user.InternalID)
	if err != nil {
		return nil, 0, fmt.Errorf("count rolls: %w", err)
	}
	return rolls, total, nil
}

func (s *service) BonusBalance(ctx context.Context, discordID string) (int, error) {
	user, err := s.userRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return 0, err
	}
	return s.rollRepo.CountUnspentBonus(ctx, user.InternalID)
}
