package notify_test

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"jobmate/placement-service/internal/lifecycle"
	"jobmate/placement-service/internal/notify"
)

var sample = lifecycle.Notification{
	RecipientID:   "stu-1",
	RecipientRole: lifecycle.RoleApplicant,
	Type:          lifecycle.NotifyOfferSent,
	Title:         "You received an offer",
	Body:          "Respond soon.",
	Data:          map[string]string{"applicationId": "app-1"},
}

func TestMarshal_Envelope(t *testing.T) {
	at := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	raw, err := notify.Marshal(sample, at)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, notify.DefaultChannel, got["event"])
	assert.Equal(t, "stu-1", got["recipientId"])
	assert.Equal(t, "applicant", got["recipientRole"])
	assert.Equal(t, lifecycle.NotifyOfferSent, got["type"])
	assert.Equal(t, "2025-03-03T09:00:00Z", got["emittedAt"])
	assert.Equal(t, map[string]any{"applicationId": "app-1"}, got["data"])
}

func TestRecorder(t *testing.T) {
	r := &notify.Recorder{}
	require.NoError(t, r.Notify(context.Background(), sample))

	r.Err = errors.New("gateway down")
	assert.Error(t, r.Notify(context.Background(), lifecycle.Notification{Type: "other"}))

	assert.Len(t, r.Sent(), 2)
	assert.Len(t, r.OfType(lifecycle.NotifyOfferSent), 1)
	r.Reset()
	assert.Empty(t, r.Sent())
}

func TestAsync_DeliversAndDrains(t *testing.T) {
	rec := &notify.Recorder{}
	a := notify.NewAsync(rec, zaptest.NewLogger(t).Sugar(), 16, 3, time.Second)

	for range 10 {
		require.NoError(t, a.Notify(context.Background(), sample))
	}
	a.Close()
	assert.Len(t, rec.Sent(), 10)

	a.Close()
}

func TestAsync_FailuresAreLogged(t *testing.T) {
	rec := &notify.Recorder{Err: errors.New("gateway down")}
	a := notify.NewAsync(rec, zaptest.NewLogger(t).Sugar(), 4, 1, time.Second)
	require.NoError(t, a.Notify(context.Background(), sample))
	a.Close()
	assert.Len(t, rec.Sent(), 1)
}

// blocking holds every delivery until release is closed.
type blocking struct {
	release chan struct{}
	started atomic.Int32
}

func (b *blocking) Notify(ctx context.Context, _ lifecycle.Notification) error {
	b.started.Add(1)
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestAsync_QueueFull(t *testing.T) {
	b := &blocking{release: make(chan struct{})}
	a := notify.NewAsync(b, zaptest.NewLogger(t).Sugar(), 1, 1, time.Minute)

	require.NoError(t, a.Notify(context.Background(), sample))
	require.Eventually(t, func() bool { return b.started.Load() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, a.Notify(context.Background(), sample))

	assert.ErrorIs(t, a.Notify(context.Background(), sample), notify.ErrQueueFull)

	close(b.release)
	a.Close()
	assert.EqualValues(t, 2, b.started.Load())
}

func TestLogSink(t *testing.T) {
	assert.NoError(t, notify.NewLogSink(zaptest.NewLogger(t).Sugar()).Notify(context.Background(), sample))
}

func TestRedisPublisher_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := notify.NewRedisPublisher(rdb, "").Notify(ctx, sample)
	assert.ErrorContains(t, err, "publish "+notify.DefaultChannel)
}
