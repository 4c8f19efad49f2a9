package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/repository"
)

type armyRepository struct {
	db *pgxpool.Pool
}

// NewArmyRepository creates a new PostgreSQL troop catalog repository
func NewArmyRepository(db *pgxpool.Pool) repository.Army {
	return &armyRepository{db: db}
}

func (r *armyRepository) ListTroops(ctx context.Context) ([]domain.Troop, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, attack, defense, cost, base_level_req
		FROM troops
		ORDER BY base_level_req, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list troops: %w", err)
	}
	defer rows.Close()

	var troops []domain.Troop
	for rows.Next() {
		troop, err := scanTroop(rows)
		if err != nil {
			return nil, err
		}
		troops = append(troops, *troop)
	}
	return troops, rows.Err()
}

func (r *armyRepository) GetTroop(ctx context.Context, name string) (*domain.Troop, error) {
	row := r.db.QueryRow(ctx, `
		SELECT name, attack, defense, cost, base_level_req
		FROM troops
		WHERE name = $1`, name)

	troop, err := scanTroop(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTroopNotFound
		}
		return nil, fmt.Errorf("failed to get troop: %w", err)
	}
	return troop, nil
}

func scanTroop(row pgx.Row) (*domain.Troop, error) {
	var (
		troop    domain.Troop
		costJSON []byte
	)
	if err := row.Scan(&troop.Name, &troop.Attack, &troop.Defense, &costJSON, &troop.BaseLevelReq); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(costJSON, &troop.Cost); err != nil {
		return nil, fmt.Errorf("failed to unmarshal troop cost: %w", err)
	}
	return &troop, nil
}
