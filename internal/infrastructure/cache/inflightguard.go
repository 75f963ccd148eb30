package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token, so a
// guard that expired and was re-acquired elsewhere is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisInFlightGuard is a short-lived per-key lock shared across instances.
type RedisInFlightGuard struct {
	client *redis.Client
	prefix string

	mu     sync.Mutex
	tokens map[string]string
}

func NewRedisInFlightGuard(client *redis.Client, prefix string) *RedisInFlightGuard {
	if prefix == "" {
		prefix = "doramashorts:inflight:"
	}
	return &RedisInFlightGuard{
		client: client,
		prefix: prefix,
		tokens: make(map[string]string),
	}
}

// Acquire returns false without error when the key is already held.
func (g *RedisInFlightGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if key == "" {
		return false, errors.New("guard key cannot be empty")
	}

	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, g.prefix+key, token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire guard: %w", err)
	}
	if !ok {
		return false, nil
	}

	g.mu.Lock()
	g.tokens[key] = token
	g.mu.Unlock()
	return true, nil
}

func (g *RedisInFlightGuard) Release(ctx context.Context, key string) error {
	g.mu.Lock()
	token, ok := g.tokens[key]
	delete(g.tokens, key)
	g.mu.Unlock()

	if !ok {
		return nil
	}

	if err := releaseScript.Run(ctx, g.client, []string{g.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("failed to release guard: %w", err)
	}
	return nil
}
