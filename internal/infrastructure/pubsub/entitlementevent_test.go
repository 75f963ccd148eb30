package pubsub

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/shared/logger"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []entitlement.ChangedEvent
}

func (r *recordingBroadcaster) Broadcast(event entitlement.ChangedEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingBroadcaster) received() []entitlement.ChangedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entitlement.ChangedEvent(nil), r.events...)
}

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisEntitlementBus_CrossInstanceDelivery(t *testing.T) {
	client := newTestClient(t)

	localA := &recordingBroadcaster{}
	localB := &recordingBroadcaster{}
	busA := NewRedisEntitlementBus(client, localA, logger.NewNopLogger())
	busB := NewRedisEntitlementBus(client, localB, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = busA.Run(ctx) }()
	go func() { _ = busB.Run(ctx) }()

	require.Eventually(t, func() bool {
		n, err := client.PubSubNumSub(ctx, entitlementChangedChannel).Result()
		return err == nil && n[entitlementChangedChannel] == 2
	}, 2*time.Second, 10*time.Millisecond)

	event := entitlement.ChangedEvent{UserID: 9, Reason: entitlement.ChangePurchasePaid, ResourceID: "pur_1"}
	require.NoError(t, busA.PublishEntitlementChanged(ctx, event))

	require.Eventually(t, func() bool { return len(localB.received()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, event.UserID, localB.received()[0].UserID)
	assert.Equal(t, event.Reason, localB.received()[0].Reason)

	// The publishing instance gets exactly one local copy.
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, localA.received(), 1)
}

func TestRedisEntitlementBus_LocalDeliveryWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	local := &recordingBroadcaster{}
	bus := NewRedisEntitlementBus(client, local, logger.NewNopLogger())

	err := bus.PublishEntitlementChanged(context.Background(), entitlement.ChangedEvent{UserID: 1})
	assert.Error(t, err)
	assert.Len(t, local.received(), 1)
}

func TestRedisEntitlementBus_IgnoresMalformedPayload(t *testing.T) {
	local := &recordingBroadcaster{}
	bus := NewRedisEntitlementBus(newTestClient(t), local, logger.NewNopLogger())

	bus.deliver("not-json")

	assert.Empty(t, local.received())
}
