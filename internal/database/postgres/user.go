package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/repository"
)

type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &userRepository{db: db}
}

const userColumns = `user_id, discord_id, username, wallet, wallet_updated_at,
	pity_streak, pity_qualified, last_roll_date, last_pity_awarded_at,
	created_at, updated_at`

func (r *userRepository) EnsureUser(ctx context.Context, discordID, username string) (*domain.User, error) {
	query := `
		INSERT INTO users (discord_id, username)
		VALUES ($1, $2)
		ON CONFLICT (discord_id)
		DO UPDATE SET username = EXCLUDED.username, updated_at = NOW()
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query, discordID, username)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE discord_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, discordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by discord id: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *userRepository) UpdateWallet(ctx context.Context, userID, wallet string, changedAt time.Time) error {
	id, err := parseUUID(userID)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET wallet = $2, wallet_updated_at = $3, updated_at = NOW()
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, query, id, wallet, changedAt)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdatePityState(ctx context.Context, userID string, state domain.PityState) error {
	id, err := parseUUID(userID)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET pity_streak = $2,
		    pity_qualified = $3,
		    last_roll_date = $4,
		    last_pity_awarded_at = $5,
		    updated_at = NOW()
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, query, id,
		state.Streak, state.Qualified, toDate(state.LastRollDate), toDate(state.LastAwardedAt))
	if err != nil {
		return fmt.Errorf("failed to update pity state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user            domain.User
		wallet          pgtype.Text
		walletUpdatedAt pgtype.Timestamptz
		lastRollDate    pgtype.Date
		lastAwardedAt   pgtype.Date
	)

	err := row.Scan(
		&user.InternalID, &user.DiscordID, &user.Username,
		&wallet, &walletUpdatedAt,
		&user.Pity.Streak, &user.Pity.Qualified, &lastRollDate, &lastAwardedAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Wallet = textToStr(wallet)
	user.WalletUpdatedAt = ptrTime(walletUpdatedAt)
	user.Pity.LastRollDate = ptrDate(lastRollDate)
	user.Pity.LastAwardedAt = ptrDate(lastAwardedAt)
	return &user, nil
}
