// Package lifecycle is the application/employment lifecycle engine.
//
// It owns three coupled state machines (Application, Employment and the
// early-completion/termination Request workflows), each driven by a single
// transition table. User actions and sweep passes go through the same
// guard-and-mutate functions; the Engine persists their result with a
// conditional update inside a store transaction and only then emits
// notifications.
//
// The package is transport- and storage-agnostic: it depends on the Store,
// Notifier and Clock ports only.
package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ─── Engine ──────────────────────────────────────────────────────────────────

// Engine is the strict call-site of the lifecycle: every method returns the
// first error it meets and persists nothing on failure.
type Engine struct {
	store    Store
	notifier Notifier
	clock    Clock
	policy   Policy
	log      *zap.SugaredLogger
	newID    func() string
}

// NewEngine returns a configured Engine. A nil clock means SystemClock.
func NewEngine(store Store, notifier Notifier, clock Clock, policy Policy, log *zap.SugaredLogger) *Engine {
	if clock == nil {
		clock = SystemClock
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		store:    store,
		notifier: notifier,
		clock:    clock,
		policy:   policy,
		log:      log,
		newID:    uuid.NewString,
	}
}

// Now is the engine's current time.
func (e *Engine) Now() time.Time { return e.clock.Now() }

// Policy returns the configured time windows.
func (e *Engine) Policy() Policy { return e.policy }

// emit hands notifications to the gateway. Delivery failures are logged and
// dropped; they never fail the transition that produced them.
func (e *Engine) emit(ctx context.Context, ns []Notification) {
	if e.notifier == nil {
		return
	}
	for _, n := range ns {
		if err := e.notifier.Notify(ctx, n); err != nil {
			e.log.Warnw("notification dropped",
				"type", n.Type, "recipientId", n.RecipientID, "err", err)
		}
	}
}

// Emit sends notifications produced outside a transition (sweep reminders)
// with the same fire-and-forget policy.
func (e *Engine) Emit(ctx context.Context, ns ...Notification) { e.emit(ctx, ns) }
