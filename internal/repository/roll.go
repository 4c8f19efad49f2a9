package repository

import (
	"context"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
)

// RollFilter narrows roll history and export queries
type RollFilter struct {
	UserID   *string
	MinTier  *int
	PityOnly bool
	Limit    int
	Offset   int
}

// Roll defines the interface for roll and prize storage
type Roll interface {
	// AcquireLock inserts the per-user lock row. Returns
	// domain.ErrRollInProgress when the row already exists.
	AcquireLock(ctx context.Context, userID string) error

	// ReleaseLock removes the lock row. Releasing an absent lock is a no-op.
	ReleaseLock(ctx context.Context, userID string) error

	// HasDailyRoll reports whether the user already spent a natural roll on date
	HasDailyRoll(ctx context.Context, userID string, date time.Time) (bool, error)

	// FindUnspentBonus returns the oldest granted roll with no tier yet,
	// or domain.ErrNoBonusRolls
	FindUnspentBonus(ctx context.Context, userID string) (*domain.Roll, error)

	// SpendBonusRoll fills in the outcome of a previously granted roll
	SpendBonusRoll(ctx context.Context, rollID string, tier int, isPity bool, date time.Time) error

	// InsertRoll records a completed or granted roll and returns its ID
	InsertRoll(ctx context.Context, roll domain.Roll) (string, error)

	// CountUnspentBonus returns how many granted rolls remain unspent
	CountUnspentBonus(ctx context.Context, userID string) (int, error)

	// ListByUser returns a page of completed rolls, newest first
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Roll, error)

	// CountByUser returns the number of completed rolls for a user
	CountByUser(ctx context.Context, userID string) (int, error)

	// ListRolls returns completed rolls matching the filter, newest first
	ListRolls(ctx context.Context, filter RollFilter) ([]domain.Roll, error)

	// InsertPrize records a denormalized prize row
	InsertPrize(ctx context.Context, prize domain.Prize) error

	// ListPrizes returns all prizes, newest first
	ListPrizes(ctx context.Context) ([]domain.Prize, error)
}
