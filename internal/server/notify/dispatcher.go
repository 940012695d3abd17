package notify

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

const (
	DefaultWorkers   = 2
	DefaultQueueSize = 256
	DefaultTimeout   = 5 * time.Second
)

// Dispatcher hands receipts to a Notifier on background workers so senders
// never wait for delivery.
type Dispatcher struct {
	notifier Notifier
	log      logging.Logger
	timeout  time.Duration

	mu      sync.RWMutex
	stopped bool
	queue   chan *models.MessageReceipt
	wg      sync.WaitGroup
}

// NewDispatcher starts workers goroutines draining a queue of queueSize.
// Non-positive arguments fall back to the package defaults.
func NewDispatcher(n Notifier, log logging.Logger, workers, queueSize int, timeout time.Duration) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	d := &Dispatcher{
		notifier: n,
		log:      log,
		timeout:  timeout,
		queue:    make(chan *models.MessageReceipt, queueSize),
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}

	return d
}

// Dispatch enqueues a copy of r and returns at once. It reports false when
// the receipt was dropped because the queue is full or the dispatcher is
// stopped.
func (d *Dispatcher) Dispatch(ctx context.Context, r *models.MessageReceipt) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.log.Warn(ctx, "notification dropped, dispatcher stopped", "id", r.ID)
		return false
	}

	cp := *r
	select {
	case d.queue <- &cp:
		return true
	default:
		d.log.Warn(ctx, "notification dropped, queue full", "id", r.ID, "to", r.ToUsername)
		return false
	}
}

// Stop rejects further receipts and waits until queued ones are delivered.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for r := range d.queue {
		d.deliver(r)
	}
}

func (d *Dispatcher) deliver(r *models.MessageReceipt) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	// A notifier panic is logged and the worker keeps draining the queue.
	defer func() {
		if p := recover(); p != nil {
			d.log.Error(ctx, "notifier panicked", "id", r.ID, "panic", p)
		}
	}()

	if err := d.notifier.Notify(ctx, r); err != nil {
		d.log.Error(ctx, "notification failed", "id", r.ID, "to", r.ToUsername, "error", err)
		return
	}
	d.log.Debug(ctx, "notification delivered", "id", r.ID)
}
