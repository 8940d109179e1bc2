// Package notify holds the Notification Gateway adapters. Every adapter
// implements lifecycle.Notifier; delivery is best-effort and never retried.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"jobmate/placement-service/internal/lifecycle"
)

// DefaultChannel is the Redis pub/sub channel the gateway forwards to users.
const DefaultChannel = "EVENT_NOTIFICATION"

// envelope is the wire form shared by the Redis and Kafka publishers.
type envelope struct {
	Event string `json:"event"`
	lifecycle.Notification
	EmittedAt time.Time `json:"emittedAt"`
}

func marshal(n lifecycle.Notification, at time.Time) ([]byte, error) {
	b, err := json.Marshal(envelope{Event: DefaultChannel, Notification: n, EmittedAt: at})
	return b, errors.Wrap(err, "marshal notification")
}

// RedisPublisher publishes notifications on a Redis channel.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
	clock   lifecycle.Clock
}

// NewRedisPublisher returns a publisher on channel, or DefaultChannel when
// channel is empty.
func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{rdb: rdb, channel: channel, clock: lifecycle.SystemClock}
}

func (p *RedisPublisher) Notify(ctx context.Context, n lifecycle.Notification) error {
	event, err := marshal(n, p.clock.Now())
	if err != nil {
		return err
	}
	if err := p.rdb.Publish(ctx, p.channel, event).Err(); err != nil {
		return errors.Wrapf(err, "publish %s", p.channel)
	}
	return nil
}
