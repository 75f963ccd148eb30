package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/shared/goroutine"
	"github.com/doramashorts/backend/internal/shared/logger"
)

const entitlementChangedChannel = "doramashorts:entitlement:changed"

// LocalBroadcaster delivers events to streams held by this instance.
type LocalBroadcaster interface {
	Broadcast(event entitlement.ChangedEvent)
}

// entitlementEnvelope tags events with the publishing instance.
type entitlementEnvelope struct {
	InstanceID string                   `json:"instance_id"`
	Event      entitlement.ChangedEvent `json:"event"`
}

// RedisEntitlementBus publishes entitlement changes to every API instance.
// Local streams are served directly and the Redis copy sent by this instance
// is skipped on receipt.
type RedisEntitlementBus struct {
	client     *redis.Client
	local      LocalBroadcaster
	logger     logger.Interface
	instanceID string
}

func NewRedisEntitlementBus(client *redis.Client, local LocalBroadcaster, logger logger.Interface) *RedisEntitlementBus {
	return &RedisEntitlementBus{
		client:     client,
		local:      local,
		logger:     logger,
		instanceID: uuid.NewString(),
	}
}

func (b *RedisEntitlementBus) PublishEntitlementChanged(ctx context.Context, event entitlement.ChangedEvent) error {
	if b.local != nil {
		b.local.Broadcast(event)
	}

	data, err := json.Marshal(entitlementEnvelope{InstanceID: b.instanceID, Event: event})
	if err != nil {
		return fmt.Errorf("failed to marshal entitlement event: %w", err)
	}

	if err := b.client.Publish(ctx, entitlementChangedChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish entitlement event: %w", err)
	}

	b.logger.Debugw("entitlement change published",
		"user_id", event.UserID,
		"reason", event.Reason,
	)
	return nil
}

// Run relays events from other instances to the local broadcaster until ctx
// is cancelled, reconnecting with backoff.
func (b *RedisEntitlementBus) Run(ctx context.Context) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.logger.Warnw("entitlement subscription disconnected, reconnecting",
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisEntitlementBus) subscribe(ctx context.Context) error {
	ps := b.client.Subscribe(ctx, entitlementChangedChannel)
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", entitlementChangedChannel, err)
	}
	b.logger.Infow("subscribed to entitlement channel", "instance_id", b.instanceID)

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.deliver(msg.Payload)
		}
	}
}

func (b *RedisEntitlementBus) deliver(payload string) {
	var env entitlementEnvelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		b.logger.Warnw("failed to unmarshal entitlement event", "payload", payload, "error", err)
		return
	}
	if env.InstanceID == b.instanceID || b.local == nil {
		return
	}

	goroutine.SafeGo(b.logger, "entitlement-event-broadcast", func() {
		b.local.Broadcast(env.Event)
	})
}
