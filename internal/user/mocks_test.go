package user

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/kingdomroll/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) EnsureUser(ctx context.Context, discordID, username string) (*domain.User, error) {
	args := m.Called(ctx, discordID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) UpdateWallet(ctx context.Context, userID, wallet string, changedAt time.Time) error {
	args := m.Called(ctx, userID, wallet, changedAt)
	return args.Error(0)
}

func (m *MockRepository) UpdatePityState(ctx context.Context, userID string, state domain.PityState) error {
	args := m.Called(ctx, userID, state)
	return args.Error(0)
}
