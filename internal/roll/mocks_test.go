package roll

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

// MockRollRepository
type MockRollRepository struct {
	mock.Mock
}

func (m *MockRollRepository) AcquireLock(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRollRepository) ReleaseLock(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRollRepository) HasDailyRoll(ctx context.Context, userID string, date time.Time) (bool, error) {
	args := m.Called(ctx, userID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockRollRepository) FindUnspentBonus(ctx context.Context, userID string) (*domain.Roll, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roll), args.Error(1)
}

func (m *MockRollRepository) SpendBonusRoll(ctx context.Context, rollID string, tier int, isPity bool, date time.Time) error {
	args := m.Called(ctx, rollID, tier, isPity, date)
	return args.Error(0)
}

func (m *MockRollRepository) InsertRoll(ctx context.Context, roll domain.Roll) (string, error) {
	args := m.Called(ctx, roll)
	return args.String(0), args.Error(1)
}

func (m *MockRollRepository) CountUnspentBonus(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRollRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Roll, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Roll), args.Error(1)
}

func (m *MockRollRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRollRepository) ListRolls(ctx context.Context, filter repository.RollFilter) ([]domain.Roll, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Roll), args.Error(1)
}

func (m *MockRollRepository) InsertPrize(ctx context.Context, prize domain.Prize) error {
	args := m.Called(ctx, prize)
	return args.Error(0)
}

func (m *MockRollRepository) ListPrizes(ctx context.Context) ([]domain.Prize, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prize), args.Error(1)
}
