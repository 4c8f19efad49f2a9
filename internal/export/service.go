// Package export renders roll and prize history as CSV for giveaway
// bookkeeping.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/repository"
)

// Filter selects which rolls are exported.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterTier6Up  Filter = "tier6plus"
	FilterPityOnly Filter = "pity"
)

// ValidFilter reports whether f is a known export filter.
func ValidFilter(f Filter) bool {
	switch f {
	case FilterAll, FilterTier6Up, FilterPityOnly:
		return true
	}
	return false
}

var rollHeader = []string{"roll_id", "username", "wallet", "source", "tier", "is_pity", "roll_date", "rolled_at"}
var prizeHeader = []string{"prize_id", "username", "wallet", "tier", "tier_label", "won_at"}

// Service defines the interface for data exports
type Service interface {
	// RollsCSV renders completed rolls matching the filter
	RollsCSV(ctx context.Context, filter Filter) ([]byte, error)

	// PrizesCSV renders all recorded prize wins
	PrizesCSV(ctx context.Context) ([]byte, error)
}

type service struct {
	userRepo repository.User
	rollRepo repository.Roll
}

// NewService creates a new export service
func NewService(userRepo repository.User, rollRepo repository.Roll) Service {
	return &service{userRepo: userRepo, rollRepo: rollRepo}
}

func (s *service) RollsCSV(ctx context.Context, filter Filter) ([]byte, error) {
	if !ValidFilter(filter) {
		return nil, domain.ErrInvalidInput
	}

	query := repository.RollFilter{}
	switch filter {
	case FilterTier6Up:
		minTier := 6
		query.MinTier = &minTier
	case FilterPityOnly:
		query.PityOnly = true
	}

	rolls, err := s.rollRepo.ListRolls(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rolls: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(rollHeader); err != nil {
		return nil, err
	}

	// Usernames are resolved once per user, not once per roll
	users := map[string]*domain.User{}
	for _, roll := range rolls {
		user, ok := users[roll.UserID]
		if !ok {
			user, err = s.userRepo.GetByID(ctx, roll.UserID)
			if err != nil {
				return nil, fmt.Errorf("resolve user %s: %w", roll.UserID, err)
			}
			users[roll.UserID] = user
		}

		tier := ""
		if roll.TierWon != nil {
			tier = strconv.Itoa(*roll.TierWon)
		}
		record := []string{
			roll.ID,
			user.Username,
			user.Wallet,
			string(roll.Source),
			tier,
			strconv.FormatBool(roll.IsPity),
			roll.RollDate.Format(time.DateOnly),
			roll.RolledAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *service) PrizesCSV(ctx context.Context) ([]byte, error) {
	prizes, err := s.rollRepo.ListPrizes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prizes: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(prizeHeader); err != nil {
		return nil, err
	}
	for _, prize := range prizes {
		record := []string{
			prize.ID,
			prize.Username,
			prize.Wallet,
			strconv.Itoa(prize.Tier),
			prize.TierLabel,
			prize.WonAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
