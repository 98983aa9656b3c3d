package notify

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	apperrors "crowdaid-backend/internal/errors"
	"crowdaid-backend/internal/logger"
)

// Task is one unit of asynchronous notification work. Errors returned by Run
// are logged and counted, never handed back to whoever dispatched the task.
type Task struct {
	Name   string
	Fields map[string]interface{}
	Run    func(ctx context.Context) error
}

// DispatcherConfig tunes the worker pool
type DispatcherConfig struct {
	WorkerCount int
	QueueSize   int
	TaskTimeout time.Duration
}

// DispatcherStats is a snapshot of the dispatcher counters
type DispatcherStats struct {
	Dispatched  int64     `json:"dispatched"`
	Processed   int64     `json:"processed"`
	Failed      int64     `json:"failed"`
	Dropped     int64     `json:"dropped"`
	QueueLength int       `json:"queue_length"`
	Workers     int       `json:"workers"`
	StartTime   time.Time `json:"start_time"`
}

// Dispatcher runs tasks on a fixed pool of goroutines fed by a bounded queue
type Dispatcher struct {
	config DispatcherConfig
	queue  chan Task

	isRunning bool
	isStopped bool
	mutex     sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	dispatched atomic.Int64
	processed  atomic.Int64
	failed     atomic.Int64
	dropped    atomic.Int64
	startTime  time.Time
}

// NewDispatcher creates a stopped dispatcher; call Start before dispatching
func NewDispatcher(config DispatcherConfig) *Dispatcher {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 3
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 500
	}
	if config.TaskTimeout <= 0 {
		config.TaskTimeout = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		config: config,
		queue:  make(chan Task, config.QueueSize),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the worker goroutines. Starting twice is a no-op.
func (d *Dispatcher) Start() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.isStopped {
		return apperrors.ErrDispatcherStopped
	}
	if d.isRunning {
		return nil
	}

	d.isRunning = true
	d.startTime = time.Now()

	logger.New().Infof("Starting notification dispatcher with %d workers", d.config.WorkerCount)
	for i := 0; i < d.config.WorkerCount; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	return nil
}

// Stop refuses new tasks, lets the workers drain the queue and waits for
// them. If ctx expires first, in-flight tasks are cancelled and ctx.Err() is returned.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mutex.Lock()
	if d.isStopped {
		d.mutex.Unlock()
		return nil
	}
	d.isStopped = true
	wasRunning := d.isRunning
	d.isRunning = false
	close(d.queue)
	d.mutex.Unlock()

	if !wasRunning {
		d.cancel()
		return nil
	}

	logger.New().Info("Stopping notification dispatcher...")

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		logger.New().Info("Notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		logger.New().Warn("Notification dispatcher stopped before the queue drained")
		return ctx.Err()
	}
}

// Dispatch enqueues task without blocking. It fails with ErrQueueFull when
// the queue is saturated and ErrDispatcherStopped once Stop has been called.
func (d *Dispatcher) Dispatch(task Task) error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if d.isStopped || !d.isRunning {
		d.dropped.Add(1)
		return apperrors.ErrDispatcherStopped
	}

	select {
	case d.queue <- task:
		d.dispatched.Add(1)
		return nil
	default:
		d.dropped.Add(1)
		return apperrors.ErrQueueFull
	}
}

// Stats returns a snapshot of the dispatcher counters
func (d *Dispatcher) Stats() DispatcherStats {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return DispatcherStats{
		Dispatched:  d.dispatched.Load(),
		Processed:   d.processed.Load(),
		Failed:      d.failed.Load(),
		Dropped:     d.dropped.Load(),
		QueueLength: len(d.queue),
		Workers:     d.config.WorkerCount,
		StartTime:   d.startTime,
	}
}

func (d *Dispatcher) worker(workerID int) {
	defer d.wg.Done()

	logger.New().Debugf("Notification worker %d started", workerID)
	for task := range d.queue {
		if err := runTask(d.ctx, d.config.TaskTimeout, task); err != nil {
			d.failed.Add(1)
		}
		d.processed.Add(1)
	}
	logger.New().Debugf("Notification worker %d stopping", workerID)
}

// runTask executes task under a deadline, converting panics into errors and
// logging every failure with the task's fields.
func runTask(parent context.Context, timeout time.Duration, task Task) (err error) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	startTime := time.Now()
	entry := logger.WithContext(ctx).WithFields(task.Fields).WithField("task", task.Name)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
		if err != nil {
			entry.WithError(err).Error("Notification task failed")
			return
		}
		entry.WithField("duration_ms", time.Since(startTime).Milliseconds()).Debug("Notification task completed")
	}()

	return task.Run(ctx)
}

// InlineDispatcher runs each task synchronously on the caller's goroutine.
// Failures are logged and swallowed exactly like the pooled dispatcher.
type InlineDispatcher struct {
	TaskTimeout time.Duration
}

// NewInlineDispatcher creates an inline dispatcher with a default task timeout
func NewInlineDispatcher() *InlineDispatcher {
	return &InlineDispatcher{TaskTimeout: 30 * time.Second}
}

// Dispatch runs task immediately and always returns nil
func (d *InlineDispatcher) Dispatch(task Task) error {
	timeout := d.TaskTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	_ = runTask(context.Background(), timeout, task)
	return nil
}
