package worker

import (
	"context"
	"sync"

	"github.com/osse101/kingdomroll/internal/logger"
)

// Job is a unit of work executed by the pool.
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed set of goroutines. Failures are logged and
// never crash a worker.
type Pool struct {
	workers int
	jobs    chan Job
	wg      sync.WaitGroup
	quit    chan struct{}
}

// NewPool creates a pool with the given worker count and queue capacity.
func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultPoolWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultPoolQueueSize
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, queueSize),
		quit:    make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			ctx := context.Background()
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue submits a job. Returns false once the pool is stopping or the
// queue is full, so callers can fall back to running the job inline.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop signals the workers and waits for in-flight jobs.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}
