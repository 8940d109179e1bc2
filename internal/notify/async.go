package notify

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"jobmate/placement-service/internal/lifecycle"
)

// ErrQueueFull is returned when the async buffer has no room. The engine
// logs it and drops the notification.
var ErrQueueFull = errors.New("notification queue full")

// Async decouples the engine from a slow gateway: Notify only enqueues, and a
// fixed pool of workers delivers through the wrapped Notifier.
type Async struct {
	next    lifecycle.Notifier
	log     *zap.SugaredLogger
	timeout time.Duration
	queue   chan lifecycle.Notification

	once sync.Once
	wg   sync.WaitGroup
}

// NewAsync wraps next with a buffer of size slots and workers goroutines.
// Each delivery gets its own timeout.
func NewAsync(next lifecycle.Notifier, log *zap.SugaredLogger, size, workers int, timeout time.Duration) *Async {
	if size <= 0 {
		size = 256
	}
	if workers <= 0 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	a := &Async{
		next:    next,
		log:     log,
		timeout: timeout,
		queue:   make(chan lifecycle.Notification, size),
	}
	for range workers {
		a.wg.Add(1)
		go a.run()
	}
	return a
}

// Notify enqueues n without blocking.
func (a *Async) Notify(_ context.Context, n lifecycle.Notification) error {
	select {
	case a.queue <- n:
		return nil
	default:
		return ErrQueueFull
	}
}

func (a *Async) run() {
	defer a.wg.Done()
	for n := range a.queue {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		if err := a.next.Notify(ctx, n); err != nil {
			a.log.Warnw("notification delivery failed",
				"type", n.Type, "recipientId", n.RecipientID, "err", err)
		}
		cancel()
	}
}

// Close stops accepting work and waits for the queue to drain. Notify must
// not be called after Close.
func (a *Async) Close() {
	a.once.Do(func() { close(a.queue) })
	a.wg.Wait()
}
