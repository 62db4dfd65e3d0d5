package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Transactor runs a unit of work atomically. Repositories called with the
// context passed to fn take part in the same database transaction. Nested
// calls create a savepoint that rolls back on its own.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// WalletLocker serializes writers of the same wallets. Credit cards and
// recurring templates are locked through it by their own IDs.
type WalletLocker interface {
	// Lock acquires the locks of every given wallet in a deterministic order
	// and returns a function releasing all of them.
	Lock(ctx context.Context, walletIDs ...uuid.UUID) (func(), error)
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}
