package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/somix-network/somix-ledger/internal/adapter"
	"github.com/somix-network/somix-ledger/internal/logger"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

// Handler processes one outbox task payload
type Handler func(ctx context.Context, payload []byte) error

// Options configures the dispatcher
type Options struct {
	PollInterval time.Duration
	BatchSize    int
	WorkerPool   int
	MaxAttempts  int
}

// Dispatcher drains pending outbox tasks. Tasks are claimed in due order and
// dispatched to kind-specific handlers on a bounded worker pool; failures are
// rescheduled with exponential backoff until the attempt budget runs out.
type Dispatcher struct {
	store    store.Store
	clock    adapter.Clock
	opts     Options
	handlers map[schema.OutboxKind]Handler

	pool   pond.Pool
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewDispatcher creates a dispatcher with no handlers registered
func NewDispatcher(s store.Store, clock adapter.Clock, opts Options) *Dispatcher {
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Second
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	if opts.WorkerPool <= 0 {
		opts.WorkerPool = 10
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 8
	}
	return &Dispatcher{
		store:    s,
		clock:    clock,
		opts:     opts,
		handlers: make(map[schema.OutboxKind]Handler),
		pool:     pond.NewPool(opts.WorkerPool),
		done:     make(chan struct{}),
	}
}

// Register installs the handler for a task kind. Must be called before Start.
func (d *Dispatcher) Register(kind schema.OutboxKind, handler Handler) {
	d.handlers[kind] = handler
}

// Start begins polling in the background until ctx is cancelled or Stop is
// called
func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)

	go func() {
		defer close(d.done)
		ticker := time.NewTicker(d.opts.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := d.Drain(ctx); err != nil {
					logger.Error("outbox drain failed", zap.Error(err))
				}
			}
		}
	}()
}

// Stop cancels polling and waits for in-flight tasks to finish
func (d *Dispatcher) Stop() {
	d.once.Do(func() {
		if d.cancel != nil {
			d.cancel()
		}
		<-d.done
		if d.pool != nil {
			d.pool.StopAndWait()
		}
	})
}

// Drain processes one batch of due tasks and waits for the batch to finish.
// Exposed for tests and one-shot runs.
func (d *Dispatcher) Drain(ctx context.Context) error {
	tasks, err := d.store.DueOutboxTasks(ctx, d.opts.BatchSize, d.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to fetch due tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil
	}

	group := d.pool.NewGroup()
	for i := range tasks {
		task := tasks[i]
		group.Submit(func() {
			d.process(ctx, task)
		})
	}
	group.Wait()
	return nil
}

func (d *Dispatcher) process(ctx context.Context, task schema.OutboxTask) {
	handler, ok := d.handlers[task.Kind]
	if !ok {
		// Unknown kinds are terminal; retrying cannot help
		d.fail(ctx, task, fmt.Sprintf("no handler registered for kind %q", task.Kind))
		return
	}

	if err := handler(ctx, task.Payload); err != nil {
		attempts := task.Attempts + 1
		if attempts >= d.opts.MaxAttempts {
			d.fail(ctx, task, err.Error())
			return
		}

		next := d.clock.Now().Add(retryDelay(attempts))
		if rescheduleErr := d.store.RescheduleOutboxTask(ctx, task.ID, attempts, next, err.Error()); rescheduleErr != nil {
			logger.Error("failed to reschedule outbox task",
				zap.Uint64("taskID", task.ID),
				zap.Error(rescheduleErr))
		}
		logger.Warn("outbox task failed, rescheduled",
			zap.Uint64("taskID", task.ID),
			zap.String("kind", string(task.Kind)),
			zap.Int("attempts", attempts),
			zap.Error(err))
		return
	}

	if err := d.store.MarkOutboxTaskDone(ctx, task.ID); err != nil {
		logger.Error("failed to mark outbox task done",
			zap.Uint64("taskID", task.ID),
			zap.Error(err))
	}
}

func (d *Dispatcher) fail(ctx context.Context, task schema.OutboxTask, reason string) {
	if err := d.store.MarkOutboxTaskFailed(ctx, task.ID, task.Attempts+1, reason); err != nil {
		logger.Error("failed to mark outbox task failed",
			zap.Uint64("taskID", task.ID),
			zap.Error(err))
	}
	logger.Error("outbox task failed permanently",
		zap.Uint64("taskID", task.ID),
		zap.String("kind", string(task.Kind)),
		zap.String("reason", reason))
}

// retryDelay doubles per attempt from one second, capped at five minutes
func retryDelay(attempts int) time.Duration {
	delay := time.Second
	for i := 1; i < attempts && delay < 5*time.Minute; i++ {
		delay *= 2
	}
	if delay > 5*time.Minute {
		delay = 5 * time.Minute
	}
	return delay
}
