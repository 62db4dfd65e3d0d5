// Package ledger contains the ledger reconciliation use cases: entries and
// transfers, and the wallet balance bookkeeping they drive.
package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for entry and transfer descriptions.
const MaxDescriptionLength = 255

type heldLocksKey struct{}

// LockWallets acquires the locks of the given wallets that ctx does not hold yet.
// The returned context records every held wallet so nested use cases running
// under it do not lock the same wallet twice.
func LockWallets(ctx context.Context, locker adapter.WalletLocker, walletIDs ...uuid.UUID) (context.Context, func(), error) {
	held, _ := ctx.Value(heldLocksKey{}).(map[uuid.UUID]struct{})

	missing := make([]uuid.UUID, 0, len(walletIDs))
	for _, id := range walletIDs {
		if _, ok := held[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return ctx, func() {}, nil
	}

	unlock, err := locker.Lock(ctx, missing...)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to lock wallets: %w", err)
	}

	next := make(map[uuid.UUID]struct{}, len(held)+len(missing))
	for id := range held {
		next[id] = struct{}{}
	}
	for _, id := range missing {
		next[id] = struct{}{}
	}

	return context.WithValue(ctx, heldLocksKey{}, next), unlock, nil
}

// requireHeld fails with a retryable conflict when ctx does not hold the wallet's lock.
func requireHeld(ctx context.Context, walletID uuid.UUID) error {
	held, _ := ctx.Value(heldLocksKey{}).(map[uuid.UUID]struct{})
	if _, ok := held[walletID]; ok {
		return nil
	}
	return domainerror.NewWalletError(
		domainerror.ErrCodeWalletVersionConflict,
		"entry moved to another wallet while waiting for its lock, retry",
		domainerror.ErrWalletVersionConflict,
	)
}

// applyDeltas adds each delta to its wallet balance, visiting wallets in ID order.
func applyDeltas(ctx context.Context, walletRepo adapter.WalletRepository, deltas map[uuid.UUID]valueobject.Money) error {
	ids := make([]uuid.UUID, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	for _, id := range ids {
		delta := deltas[id]
		if delta.IsZero() {
			continue
		}

		wallet, err := walletRepo.FindByID(ctx, id)
		if err != nil {
			return walletLookupError(err)
		}

		wallet.Credit(delta)
		if err := walletRepo.Update(ctx, wallet); err != nil {
			return walletUpdateError(err)
		}
	}

	return nil
}

// walletLookupError converts a repository lookup failure into a domain error.
func walletLookupError(err error) error {
	if errors.Is(err, domainerror.ErrWalletNotFound) {
		return domainerror.NewWalletError(
			domainerror.ErrCodeWalletNotFound,
			"wallet not found",
			domainerror.ErrWalletNotFound,
		)
	}
	return fmt.Errorf("failed to find wallet: %w", err)
}

// walletUpdateError converts a repository update failure into a domain error.
func walletUpdateError(err error) error {
	if errors.Is(err, domainerror.ErrWalletVersionConflict) {
		return domainerror.NewWalletError(
			domainerror.ErrCodeWalletVersionConflict,
			"wallet was modified by another operation, retry",
			domainerror.ErrWalletVersionConflict,
		)
	}
	return fmt.Errorf("failed to update wallet: %w", err)
}

// entryLookupError converts a repository lookup failure into a domain error.
func entryLookupError(err error) error {
	if errors.Is(err, domainerror.ErrEntryNotFound) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			domainerror.ErrEntryNotFound,
		)
	}
	return fmt.Errorf("failed to find entry: %w", err)
}

// categoryLookupError converts a repository lookup failure into a domain error.
func categoryLookupError(err error) error {
	if errors.Is(err, domainerror.ErrCategoryNotFound) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	return fmt.Errorf("failed to find category: %w", err)
}
