package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/event"
	"github.com/osse101/kingdomroll/internal/logger"
	"github.com/osse101/kingdomroll/internal/repository"
)

// walletPattern matches a base58 Solana address
var walletPattern = regexp.MustCompile(fmt.Sprintf(`^[1-9A-HJ-NP-Za-km-z]{%d,%d}$`, WalletMinLength, WalletMaxLength))

// Service defines the interface for user operations
type Service interface {
	// Ensure returns the user for a Discord ID, creating the row on first contact
	Ensure(ctx context.Context, discordID, username string) (*domain.User, error)

	// Profile returns an existing user or domain.ErrUserNotFound
	Profile(ctx context.Context, discordID string) (*domain.User, error)

	// BindWallet validates and stores a wallet address. Re-binding a
	// different address inside the cooldown window is rejected.
	BindWallet(ctx context.Context, discordID, username, address string) (*domain.User, error)
}

type service struct {
	repo           repository.User
	eventBus       event.Bus
	cache          *userCache
	walletCooldown time.Duration
	now            func() time.Time
}

// NewService creates a new user service
func NewService(repo repository.User, eventBus event.Bus, walletCooldown time.Duration) Service {
	return &service{
		repo:           repo,
		eventBus:       eventBus,
		cache:          newUserCache(DefaultCacheSize, DefaultCacheTTL),
		walletCooldown: walletCooldown,
		now:            time.Now,
	}
}

func (s *service) Ensure(ctx context.Context, discordID, username string) (*domain.User, error) {
	user, err := s.repo.EnsureUser(ctx, discordID, username)
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}
	s.cache.Set(discordID, user)
	return user, nil
}

func (s *service) Profile(ctx context.Context, discordID string) (*domain.User, error) {
	if user, ok := s.cache.Get(discordID); ok {
		return user, nil
	}
	user, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(discordID, user)
	return user, nil
}

func (s *service) BindWallet(ctx context.Context, discordID, username, address string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if !walletPattern.MatchString(address) {
		log.Warn(LogMsgWalletRejected, "discord_id", discordID)
		return nil, domain.ErrInvalidWalletAddress
	}

	user, err := s.repo.EnsureUser(ctx, discordID, username)
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	// Same address again is a no-op, not a cooldown violation
	if user.Wallet == address {
		return user, nil
	}

	now := s.now().UTC()
	if user.Wallet != "" && user.WalletUpdatedAt != nil {
		if now.Sub(*user.WalletUpdatedAt) < s.walletCooldown {
			return nil, domain.ErrWalletChangeTooSoon
		}
	}

	if err := s.repo.UpdateWallet(ctx, user.InternalID, address, now); err != nil {
		return nil, fmt.Errorf("update wallet: %w", err)
	}
	s.cache.Invalidate(discordID)

	user.Wallet = address
	user.WalletUpdatedAt = &now

	if err := s.eventBus.Publish(ctx, event.NewWalletBoundEvent(user.InternalID, MaskWallet(address))); err != nil {
		log.Warn("Failed to publish wallet event", "error", err)
	}
	log.Info(LogMsgWalletBound, "user_id", user.InternalID, "wallet", MaskWallet(address))

	return user, nil
}

// MaskWallet shortens an address for display and logs.
func MaskWallet(address string) string {
	if len(address) <= 8 {
		return address
	}
	return address[:4] + "..." + address[len(address)-4:]
}
