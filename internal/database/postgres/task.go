package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/kingdomroll/internal/domain"
	"github.com/osse101/kingdomroll/internal/repository"
)

type taskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new PostgreSQL scheduled task repository
func NewTaskRepository(db *pgxpool.Pool) repository.Task {
	return &taskRepository{db: db}
}

const taskColumns = `task_id, kind, player_id, payload, due_at, completed_at, created_at`

func (r *taskRepository) CreateTask(ctx context.Context, task domain.ScheduledTask) (string, error) {
	playerID, err := parseUUID(task.PlayerID)
	if err != nil {
		return "", err
	}

	query := `
		INSERT INTO scheduled_tasks (kind, player_id, payload, due_at)
		VALUES ($1, $2, $3, $4)
		RETURNING task_id`

	var taskID string
	err = r.db.QueryRow(ctx, query, task.Kind, playerID, task.Payload, task.DueAt).Scan(&taskID)
	if err != nil {
		return "", fmt.Errorf("failed to create scheduled task: %w", err)
	}
	return taskID, nil
}

func (r *taskRepository) GetTask(ctx context.Context, taskID string) (*domain.ScheduledTask, error) {
	id, err := parseUUID(taskID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + taskColumns + ` FROM scheduled_tasks WHERE task_id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get scheduled task: %w", err)
	}
	return task, nil
}

// CompleteTask guards on completed_at IS NULL so two workers firing the same
// task resolve it exactly once.
func (r *taskRepository) CompleteTask(ctx context.Context, taskID string) error {
	id, err := parseUUID(taskID)
	if err != nil {
		return err
	}

	query := `
		UPDATE scheduled_tasks
		SET completed_at = NOW()
		WHERE task_id = $1 AND completed_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to complete scheduled task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) ListPending(ctx context.Context, kind string) ([]domain.ScheduledTask, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM scheduled_tasks
		WHERE kind = $1 AND completed_at IS NULL
		ORDER BY due_at ASC`

	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.ScheduledTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) FindPendingByPlayer(ctx context.Context, playerID, kind string) (*domain.ScheduledTask, error) {
	id, err := parseUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + taskColumns + `
		FROM scheduled_tasks
		WHERE player_id = $1 AND kind = $2 AND completed_at IS NULL
		ORDER BY due_at ASC
		LIMIT 1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find pending task: %w", err)
	}
	return task, nil
}

func scanTask(row pgx.Row) (*domain.ScheduledTask, error) {
	var task domain.ScheduledTask
	err := row.Scan(&task.ID, &task.Kind, &task.PlayerID, &task.Payload,
		&task.DueAt, &task.CompletedAt, &task.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
