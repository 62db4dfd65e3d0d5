package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	EntryID uuid.UUID
}

// DeleteEntryUseCase removes an entry, reversing its effect when it was confirmed.
type DeleteEntryUseCase struct {
	transactor adapter.Transactor
	locker     adapter.WalletLocker
	walletRepo adapter.WalletRepository
	entryRepo  adapter.LedgerEntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	walletRepo adapter.WalletRepository,
	entryRepo adapter.LedgerEntryRepository,
) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		transactor: transactor,
		locker:     locker,
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
	}
}

// Execute performs the entry deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	current, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return entryLookupError(err)
	}

	ctx, unlock, err := LockWallets(ctx, uc.locker, current.WalletID)
	if err != nil {
		return err
	}
	defer unlock()

	var entry *entity.LedgerEntry
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err = uc.entryRepo.FindByID(ctx, input.EntryID)
		if err != nil {
			return entryLookupError(err)
		}
		if err := requireHeld(ctx, entry.WalletID); err != nil {
			return err
		}

		if err := uc.entryRepo.Delete(ctx, entry.ID); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		removed := snapshotOf(entry)
		deltas := balanceDeltas(removed, entrySnapshot{WalletID: removed.WalletID, Status: entity.EntryStatusPending})
		return applyDeltas(ctx, uc.walletRepo, deltas)
	})
	if err != nil {
		return err
	}

	slog.Info("Ledger entry deleted",
		"entry_id", entry.ID,
		"wallet_id", entry.WalletID,
		"was_confirmed", entry.IsConfirmed(),
	)

	return nil
}
