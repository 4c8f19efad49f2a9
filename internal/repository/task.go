package repository

import (
	"context"

	"github.com/osse101/kingdomroll/internal/domain"
)

// Task defines the interface for durable scheduled task storage
type Task interface {
	// CreateTask persists a new pending task and returns its ID
	CreateTask(ctx context.Context, task domain.ScheduledTask) (string, error)

	// GetTask returns a task or domain.ErrTaskNotFound
	GetTask(ctx context.Context, taskID string) (*domain.ScheduledTask, error)

	// CompleteTask marks a task done. Completing twice returns
	// domain.ErrTaskNotFound so racing workers detect the duplicate.
	CompleteTask(ctx context.Context, taskID string) error

	// ListPending returns all incomplete tasks, soonest first
	ListPending(ctx context.Context, kind string) ([]domain.ScheduledTask, error)

	// FindPendingByPlayer returns the pending task of a kind for one player,
	// or domain.ErrTaskNotFound
	FindPendingByPlayer(ctx context.Context, playerID, kind string) (*domain.ScheduledTask, error)
}
