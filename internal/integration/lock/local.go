package lock

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// slot is the lock of one key. refs counts the holder and every waiter.
type slot struct {
	ch   chan struct{}
	refs int
}

// localLocker serializes writers inside a single process. A slot is dropped
// once nobody holds or waits for it.
type localLocker struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*slot
}

// NewLocalLocker creates an in-process locker.
func NewLocalLocker() adapter.WalletLocker {
	return &localLocker{
		slots: make(map[uuid.UUID]*slot),
	}
}

func (l *localLocker) acquire(id uuid.UUID) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[id]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[id] = s
	}
	s.refs++
	return s
}

func (l *localLocker) release(id uuid.UUID, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, id)
	}
}

// Lock acquires every key in sorted order, giving up when ctx is done.
func (l *localLocker) Lock(ctx context.Context, walletIDs ...uuid.UUID) (func(), error) {
	keys := orderedKeys(walletIDs)
	held := make([]uuid.UUID, 0, len(keys))
	heldSlots := make([]*slot, 0, len(keys))

	unlock := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-heldSlots[i].ch
			l.release(held[i], heldSlots[i])
		}
	}

	for _, id := range keys {
		s := l.acquire(id)
		select {
		case s.ch <- struct{}{}:
			held = append(held, id)
			heldSlots = append(heldSlots, s)
		case <-ctx.Done():
			l.release(id, s)
			unlock()
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() { once.Do(unlock) }, nil
}
