package repository

import (
	"context"

	"github.com/osse101/kingdomroll/internal/domain"
)

// Encounter defines the interface for the exploration encounter catalog
type Encounter interface {
	// ListEncounters returns all encounters with their weights
	ListEncounters(ctx context.Context) ([]domain.Encounter, error)

	// GetEncounter returns one encounter or domain.ErrNoEncounters
	GetEncounter(ctx context.Context, id string) (*domain.Encounter, error)
}
