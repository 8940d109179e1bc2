package notify

import (
	"context"
	"slices"
	"sync"

	"jobmate/placement-service/internal/lifecycle"
)

// Recorder keeps every notification in memory. Tests use it as the gateway.
type Recorder struct {
	mu   sync.Mutex
	sent []lifecycle.Notification
	// Err, when set, is returned by every Notify after recording.
	Err error
}

func (r *Recorder) Notify(_ context.Context, n lifecycle.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return r.Err
}

// Sent returns a copy of the recorded notifications.
func (r *Recorder) Sent() []lifecycle.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.sent)
}

// OfType returns the recorded notifications of type typ.
func (r *Recorder) OfType(typ string) []lifecycle.Notification {
	var out []lifecycle.Notification
	for _, n := range r.Sent() {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}
