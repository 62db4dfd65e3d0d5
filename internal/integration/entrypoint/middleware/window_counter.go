package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowCounter counts hits per key in fixed windows that start on the first hit.
type WindowCounter interface {
	// Hit records one hit and returns the hits so far in the current window
	// and the time left until it resets.
	Hit(ctx context.Context, key string, window time.Duration) (int, time.Duration, error)
}

// maxTrackedKeys bounds the in-memory map before expired windows are evicted.
const maxTrackedKeys = 1024

type windowState struct {
	hits    int
	resetAt time.Time
}

type memoryWindowCounter struct {
	mu      sync.Mutex
	windows map[string]*windowState
	now     func() time.Time
}

// NewMemoryWindowCounter creates a counter local to this process.
func NewMemoryWindowCounter() WindowCounter {
	return &memoryWindowCounter{
		windows: make(map[string]*windowState),
		now:     time.Now,
	}
}

func (c *memoryWindowCounter) Hit(_ context.Context, key string, window time.Duration) (int, time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	state, ok := c.windows[key]
	if !ok || !now.Before(state.resetAt) {
		if !ok && len(c.windows) >= maxTrackedKeys {
			c.evictExpired(now)
		}
		state = &windowState{resetAt: now.Add(window)}
		c.windows[key] = state
	}
	state.hits++

	return state.hits, state.resetAt.Sub(now), nil
}

func (c *memoryWindowCounter) evictExpired(now time.Time) {
	for key, state := range c.windows {
		if !now.Before(state.resetAt) {
			delete(c.windows, key)
		}
	}
}

const rateLimitKeyPrefix = "ledger:rate-limit:"

// hitScript increments the counter, starts the window on the first hit and
// returns the count with the remaining TTL in milliseconds.
var hitScript = redis.NewScript(`
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {hits, redis.call("PTTL", KEYS[1])}
`)

type redisWindowCounter struct {
	client *redis.Client
}

// NewRedisWindowCounter creates a counter shared by every process using the client.
func NewRedisWindowCounter(client *redis.Client) WindowCounter {
	return &redisWindowCounter{client: client}
}

func (c *redisWindowCounter) Hit(ctx context.Context, key string, window time.Duration) (int, time.Duration, error) {
	result, err := hitScript.Run(ctx, c.client, []string{rateLimitKeyPrefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count hit: %w", err)
	}
	if len(result) != 2 {
		return 0, 0, fmt.Errorf("unexpected rate limit reply %v", result)
	}

	resetIn := time.Duration(result[1]) * time.Millisecond
	if resetIn < 0 {
		resetIn = window
	}
	return int(result[0]), resetIn, nil
}
