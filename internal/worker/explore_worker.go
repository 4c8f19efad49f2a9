package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/kingdomroll/internal/event"
	"github.com/osse101/kingdomroll/internal/explore"
	"github.com/osse101/kingdomroll/internal/logger"
)

// ExploreWorker resolves exploration missions when they come due. The
// durable task rows own the schedule; in-memory timers only avoid
// polling. On startup the worker reloads pending tasks and fires
// overdue ones immediately.
type ExploreWorker struct {
	service  explore.Service
	pool     *Pool
	mu       sync.Mutex
	timers   map[string]*time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewExploreWorker creates a new ExploreWorker backed by a job pool.
func NewExploreWorker(service explore.Service, pool *Pool) *ExploreWorker {
	return &ExploreWorker{
		service:  service,
		pool:     pool,
		timers:   make(map[string]*time.Timer),
		shutdown: make(chan struct{}),
	}
}

// Start recovers pending missions from storage and schedules them.
func (w *ExploreWorker) Start(ctx context.Context) {
	log := logger.FromContext(ctx)

	pending, err := w.service.PendingTasks(ctx)
	if err != nil {
		log.Error(LogMsgFailedToRecoverMissions, "error", err)
		return
	}
	if len(pending) > 0 {
		log.Info(LogMsgRecoveringPendingMissions, "count", len(pending))
	}
	for _, task := range pending {
		w.schedule(task.ID, task.DueAt)
	}
}

// Subscribe registers the worker for newly scheduled missions.
func (w *ExploreWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.ExploreScheduled, w.handleScheduled)
}

func (w *ExploreWorker) handleScheduled(_ context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.ExploreScheduledPayloadV1](e.Payload)
	if err != nil {
		return err
	}
	w.schedule(payload.TaskID, time.Unix(payload.DueAtUnix, 0))
	return nil
}

func (w *ExploreWorker) schedule(taskID string, dueAt time.Time) {
	log := logger.FromContext(context.Background())

	delay := time.Until(dueAt)
	log.Info(LogMsgSchedulingMission, "task_id", taskID, "delay", delay)

	if delay <= 0 {
		w.resolve(taskID)
		return
	}

	w.mu.Lock()
	if existing, ok := w.timers[taskID]; ok {
		existing.Stop()
		delete(w.timers, taskID)
	}
	timer := time.AfterFunc(delay, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		w.resolve(taskID)

		w.mu.Lock()
		delete(w.timers, taskID)
		w.mu.Unlock()
	})
	w.timers[taskID] = timer
	w.mu.Unlock()
}

// resolveJob adapts one resolution to the pool's Job interface.
type resolveJob struct {
	service explore.Service
	taskID  string
}

func (j *resolveJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgResolvingMission, "task_id", j.taskID)

	if _, err := j.service.Resolve(ctx, j.taskID); err != nil {
		log.Error(LogMsgFailedToResolveMission, "task_id", j.taskID, "error", err)
	}
	return nil
}

func (w *ExploreWorker) resolve(taskID string) {
	job := &resolveJob{service: w.service, taskID: taskID}
	if w.pool != nil && w.pool.Enqueue(job) {
		return
	}
	// Pool saturated or absent, run inline
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_ = job.Process(context.Background())
	}()
}

// Shutdown cancels pending timers and waits for in-flight resolutions.
func (w *ExploreWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down explore worker")

	close(w.shutdown)

	w.mu.Lock()
	for taskID, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending exploration resolution", "task_id", taskID)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Explore worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Explore worker shutdown timeout")
		return ctx.Err()
	}
}
