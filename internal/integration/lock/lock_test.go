package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedKeys(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	assert.Equal(t, []uuid.UUID{a, b}, orderedKeys([]uuid.UUID{b, a, b}))
}

func TestLocalLocker_SerializesSameWallet(t *testing.T) {
	locker := NewLocalLocker()
	walletID := uuid.New()

	var mu sync.Mutex
	inside := 0
	maxInside := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), walletID)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	locker := NewLocalLocker()
	walletID := uuid.New()

	unlock, err := locker.Lock(context.Background(), walletID)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, uuid.New(), walletID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocalLocker_DropsReleasedSlots(t *testing.T) {
	locker := NewLocalLocker().(*localLocker)
	shared := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), shared, uuid.New())
			if assert.NoError(t, err) {
				unlock()
			}
		}()
	}
	wg.Wait()
	assert.Empty(t, locker.slots)

	unlock, err := locker.Lock(context.Background(), shared)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, shared)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, locker.slots, 1, "a timed out waiter leaves only the holder's slot")

	unlock()
	unlock()
	assert.Empty(t, locker.slots)
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Minute, 50*time.Millisecond)
	a, b := uuid.New(), uuid.New()

	unlock, err := locker.Lock(context.Background(), a, b)
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+a.String()))
	assert.True(t, mr.Exists(keyPrefix+b.String()))

	_, err = locker.Lock(context.Background(), b)
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()
	assert.False(t, mr.Exists(keyPrefix+a.String()))
	assert.False(t, mr.Exists(keyPrefix+b.String()))

	unlock, err = locker.Lock(context.Background(), b)
	require.NoError(t, err)
	unlock()
}

func TestRedisLocker_DoesNotReleaseForeignLock(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Second, 10*time.Millisecond)
	walletID := uuid.New()

	unlock, err := locker.Lock(context.Background(), walletID)
	require.NoError(t, err)

	// Simulate expiry followed by another holder taking the key.
	mr.FastForward(2 * time.Second)
	require.NoError(t, mr.Set(keyPrefix+walletID.String(), "other-holder"))

	unlock()
	value, err := mr.Get(keyPrefix + walletID.String())
	require.NoError(t, err)
	assert.Equal(t, "other-holder", value)
}

func TestRedisLocker_PartialFailureReleasesHeldKeys(t *testing.T) {
	mr, client := newTestRedis(t)
	locker := NewRedisLocker(client, time.Minute, 10*time.Millisecond)

	first := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	second := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	require.NoError(t, mr.Set(keyPrefix+second.String(), "busy"))

	_, err := locker.Lock(context.Background(), second, first)
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.False(t, mr.Exists(keyPrefix+first.String()))
}
