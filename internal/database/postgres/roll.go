package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/repository"
)

type rollRepository struct {
	db *pgxpool.Pool
}

// NewRollRepository creates a new PostgreSQL roll repository
func NewRollRepository(db *pgxpool.Pool) repository.Roll {
	return &rollRepository{db: db}
}

const rollColumns = `roll_id, user_id, source, tier_won, is_pity, granted_by, roll_date, rolled_at`

// AcquireLock inserts the per-user lock row. The primary key collision on a
// second insert is how concurrent rolls are detected; nobody waits.
func (r *rollRepository) AcquireLock(ctx context.Context, userID string) error {
	id, err := parseUUID(userID)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `INSERT INTO roll_locks (user_id) VALUES ($1)`, id)
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrRollInProgress
		}
		return fmt.Errorf("failed to acquire roll lock: %w", err)
	}
	return nil
}

func (r *rollRepository) ReleaseLock(ctx context.Context, userID string) error {
	id, err := parseUUID(userID)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM roll_locks WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("failed to release roll lock: %w", err)
	}
	return nil
}

func (r *rollRepository) HasDailyRoll(ctx context.Context, userID string, date time.Time) (bool, error) {
	id, err := parseUUID(userID)
	if err != nil {
		return false, err
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM rolls
			WHERE user_id = $1 AND source = $2 AND roll_date = $3
		)`

	var exists bool
	err = r.db.QueryRow(ctx, query, id, domain.RollSourceDaily, pgtype.Date{Time: date, Valid: true}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check daily roll: %w", err)
	}
	return exists, nil
}

func (r *rollRepository) FindUnspentBonus(ctx context.Context, userID string) (*domain.Roll, error) {
	id, err := parseUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + rollColumns + `
		FROM rolls
		WHERE user_id = $1 AND tier_won IS NULL
		ORDER BY rolled_at ASC
		LIMIT 1`

	roll, err := scanRoll(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoBonusRolls
		}
		return nil, fmt.Errorf("failed to find unspent bonus roll: %w", err)
	}
	return roll, nil
}

// SpendBonusRoll updates the granted row in place rather than inserting a
// second record, so a grant can only ever be spent once.
func (r *rollRepository) SpendBonusRoll(ctx context.Context, rollID string, tier int, isPity bool, date time.Time) error {
	id, err := parseUUID(rollID)
	if err != nil {
		return err
	}

	query := `
		UPDATE rolls
		SET tier_won = $2, is_pity = $3, roll_date = $4, rolled_at = NOW()
		WHERE roll_id = $1 AND tier_won IS NULL`

	tag, err := r.db.Exec(ctx, query, id, tier, isPity, pgtype.Date{Time: date, Valid: true})
	if err != nil {
		return fmt.Errorf("failed to spend bonus roll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRollNotFound
	}
	return nil
}

func (r *rollRepository) InsertRoll(ctx context.Context, roll domain.Roll) (string, error) {
	id, err := parseUUID(roll.UserID)
	if err != nil {
		return "", err
	}

	query := `
		INSERT INTO rolls (user_id, source, tier_won, is_pity, granted_by, roll_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING roll_id`

	var rollID string
	err = r.db.QueryRow(ctx, query,
		id, roll.Source, ptrToInt4(roll.TierWon), roll.IsPity,
		strToText(roll.GrantedBy), toDate(&roll.RollDate),
	).Scan(&rollID)
	if err != nil {
		if isUniqueViolation(err, ConstraintDailyRollKey) {
			return "", domain.ErrDailyRollUsed
		}
		return "", fmt.Errorf("failed to insert roll: %w", err)
	}
	return rollID, nil
}

func (r *rollRepository) CountUnspentBonus(ctx context.Context, userID string) (int, error) {
	id, err := parseUUID(userID)
	if err != nil {
		return 0, err
	}

	var count int
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM rolls WHERE user_id = $1 AND tier_won IS NULL`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unspent bonus rolls: %w", err)
	}
	return count, nil
}

func (r *rollRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Roll, error) {
	id, err := parseUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + rollColumns + `
		FROM rolls
		WHERE user_id = $1 AND tier_won IS NOT NULL
		ORDER BY rolled_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, id, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list rolls: %w", err)
	}
	defer rows.Close()

	return scanRolls(rows)
}

func (r *rollRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	id, err := parseUUID(userID)
	if err != nil {
		return 0, err
	}

	var count int
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM rolls WHERE user_id = $1 AND tier_won IS NOT NULL`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rolls: %w", err)
	}
	return count, nil
}

func (r *rollRepository) ListRolls(ctx context.Context, filter repository.RollFilter) ([]domain.Roll, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ` + rollColumns + `
		FROM rolls
		WHERE tier_won IS NOT NULL`)

	args := []interface{}{}
	argNum := 1

	if filter.UserID != nil {
		id, err := parseUUID(*filter.UserID)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&queryBuilder, " AND user_id = $%d", argNum)
		args = append(args, id)
		argNum++
	}

	if filter.MinTier != nil {
		fmt.Fprintf(&queryBuilder, " AND tier_won >= $%d", argNum)
		args = append(args, *filter.MinTier)
		argNum++
	}

	if filter.PityOnly {
		queryBuilder.WriteString(" AND is_pity = TRUE")
	}

	queryBuilder.WriteString(" ORDER BY rolled_at DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
		argNum++
	}

	if filter.Offset > 0 {
		fmt.Fprintf(&queryBuilder, " OFFSET $%d", argNum)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rolls: %w", err)
	}
	defer rows.Close()

	return scanRolls(rows)
}

func (r *rollRepository) InsertPrize(ctx context.Context, prize domain.Prize) error {
	id, err := parseUUID(prize.UserID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO prizes (user_id, username, wallet, tier, tier_label, won_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.Exec(ctx, query,
		id, prize.Username, strToText(prize.Wallet), prize.Tier, prize.TierLabel, prize.WonAt)
	if err != nil {
		return fmt.Errorf("failed to insert prize: %w", err)
	}
	return nil
}

func (r *rollRepository) ListPrizes(ctx context.Context) ([]domain.Prize, error) {
	query := `
		SELECT prize_id, user_id, username, wallet, tier, tier_label, won_at
		FROM prizes
		ORDER BY won_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list prizes: %w", err)
	}
	defer rows.Close()

	var prizes []domain.Prize
	for rows.Next() {
		var (
			p      domain.Prize
			wallet pgtype.Text
		)
		if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &wallet, &p.Tier, &p.TierLabel, &p.WonAt); err != nil {
			return nil, fmt.Errorf("failed to scan prize: %w", err)
		}
		p.Wallet = textToStr(wallet)
		prizes = append(prizes, p)
	}
	return prizes, rows.Err()
}

func scanRoll(row pgx.Row) (*domain.Roll, error) {
	var (
		roll      domain.Roll
		tierWon   pgtype.Int4
		grantedBy pgtype.Text
		rollDate  pgtype.Date
	)

	err := row.Scan(&roll.ID, &roll.UserID, &roll.Source, &tierWon, &roll.IsPity,
		&grantedBy, &rollDate, &roll.RolledAt)
	if err != nil {
		return nil, err
	}

	roll.TierWon = intToPtr(tierWon)
	roll.GrantedBy = textToStr(grantedBy)
	if d := ptrDate(rollDate); d != nil {
		roll.RollDate = *d
	}
	return &roll, nil
}

func scanRolls(rows pgx.Rows) ([]domain.Roll, error) {
	var rolls []domain.Roll
	for rows.Next() {
		roll, err := scanRoll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roll: %w", err)
		}
		rolls = append(rolls, *roll)
	}
	return rolls, rows.Err()
}
