package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/export"
	"github.com/osse101/kingdomroll/internal/roll"
)

type MockRollService struct {
	mock.Mock
}

func (m *MockRollService) Roll(ctx context.Context, discordID, username string) (*roll.Result, error) {
	args := m.Called(ctx, discordID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roll.Result), args.Error(1)
}

func (m *MockRollService) Grant(ctx context.Context, targetDiscordID, targetUsername, grantedBy string, count int) (int, error) {
	args := m.Called(ctx, targetDiscordID, targetUsername, grantedBy, count)
	return args.Int(0), args.Error(1)
}

func (m *MockRollService) History(ctx context.Context, discordID string, limit, offset int) ([]domain.Roll, int, error) {
	args := m.Called(ctx, discordID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Roll), args.Int(1), args.Error(2)
}

func (m *MockRollService) BonusBalance(ctx context.Context, discordID string) (int, error) {
	args := m.Called(ctx, discordID)
	return args.Int(0), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Ensure(ctx context.Context, discordID, username string) (*domain.User, error) {
	args := m.Called(ctx, discordID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Profile(ctx context.Context, discordID string) (*domain.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) BindWallet(ctx context.Context, discordID, username, address string) (*domain.User, error) {
	args := m.Called(ctx, discordID, username, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) RollsCSV(ctx context.Context, filter export.Filter) ([]byte, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) PrizesCSV(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
