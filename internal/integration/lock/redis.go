package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

const (
	keyPrefix     = "ledger:wallet-lock:"
	retryInterval = 25 * time.Millisecond
)

// ErrLockTimeout is returned when a wallet lock could not be acquired within the wait limit.
var ErrLockTimeout = errors.New("timed out waiting for wallet lock")

// releaseScript deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisLocker serializes wallet writers across processes sharing a Redis instance.
type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

// NewRedisLocker creates a Redis-backed wallet locker. Locks expire after ttl
// and acquisition gives up after wait.
func NewRedisLocker(client *redis.Client, ttl, wait time.Duration) adapter.WalletLocker {
	return &redisLocker{
		client: client,
		ttl:    ttl,
		wait:   wait,
	}
}

// Lock acquires every wallet lock in sorted order.
func (l *redisLocker) Lock(ctx context.Context, walletIDs ...uuid.UUID) (func(), error) {
	token := uuid.NewString()
	keys := orderedKeys(walletIDs)
	held := make([]string, 0, len(keys))

	release := func() {
		// Release must succeed even if the caller's context was cancelled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		for i := len(held) - 1; i >= 0; i-- {
			if err := releaseScript.Run(releaseCtx, l.client, []string{held[i]}, token).Err(); err != nil {
				slog.Warn("Failed to release wallet lock", "key", held[i], "error", err)
			}
		}
	}

	deadline := time.Now().Add(l.wait)
	for _, id := range keys {
		key := keyPrefix + id.String()
		if err := l.acquire(ctx, key, token, deadline); err != nil {
			release()
			return nil, err
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() { once.Do(release) }, nil
}

func (l *redisLocker) acquire(ctx context.Context, key, token string, deadline time.Time) error {
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire wallet lock: %w", err)
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}
