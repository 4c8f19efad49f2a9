package repository

import (
	"context"

	"github.com/osse101/kingdomroll/internal/domain"
)

// Army defines the interface for troop catalog storage
type Army interface {
	// ListTroops returns the static troop catalog
	ListTroops(ctx context.Context) ([]domain.Troop, error)

	// GetTroop returns one catalog entry or domain.ErrTroopNotFound
	GetTroop(ctx context.Context, name string) (*domain.Troop, error)
}
