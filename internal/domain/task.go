package domain

import "time"

// Task kinds.
const (
	TaskKindExplore = "explore"
)

// ScheduledTask is a durable delayed job. Tasks survive restarts; the
// worker reloads incomplete ones on startup and fires overdue tasks
// immediately.
type ScheduledTask struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	PlayerID    string     `json:"player_id"`
	Payload     []byte     `json:"payload,omitempty"`
	DueAt       time.Time  `json:"due_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Pending reports whether the task still needs to run.
func (t ScheduledTask) Pending() bool {
	return t.CompletedAt == nil
}
