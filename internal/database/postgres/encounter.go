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

type encounterRepository struct {
	db *pgxpool.Pool
}

// NewEncounterRepository creates a new PostgreSQL encounter catalog repository
func NewEncounterRepository(db *pgxpool.Pool) repository.Encounter {
	return &encounterRepository{db: db}
}

func (r *encounterRepository) ListEncounters(ctx context.Context) ([]domain.Encounter, error) {
	rows, err := r.db.Query(ctx, `
		SELECT encounter_id, name, description, probability, resources, troops
		FROM encounters
		ORDER BY encounter_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list encounters: %w", err)
	}
	defer rows.Close()

	var encounters []domain.Encounter
	for rows.Next() {
		enc, err := scanEncounter(rows)
		if err != nil {
			return nil, err
		}
		encounters = append(encounters, *enc)
	}
	return encounters, rows.Err()
}

func (r *encounterRepository) GetEncounter(ctx context.Context, id string) (*domain.Encounter, error) {
	row := r.db.QueryRow(ctx, `
		SELECT encounter_id, name, description, probability, resources, troops
		FROM encounters
		WHERE encounter_id = $1`, id)

	enc, err := scanEncounter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoEncounters
		}
		return nil, fmt.Errorf("failed to get encounter: %w", err)
	}
	return enc, nil
}

func scanEncounter(row pgx.Row) (*domain.Encounter, error) {
	var (
		enc           domain.Encounter
		resourcesJSON []byte
		troopsJSON    []byte
	)
	err := row.Scan(&enc.ID, &enc.Name, &enc.Description, &enc.Probability, &resourcesJSON, &troopsJSON)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(resourcesJSON, &enc.Resources); err != nil {
		return nil, fmt.Errorf("failed to unmarshal encounter resources: %w", err)
	}
	if err := json.Unmarshal(troopsJSON, &enc.Troops); err != nil {
		return nil, fmt.Errorf("failed to unmarshal encounter troops: %w", err)
	}
	return &enc, nil
}
