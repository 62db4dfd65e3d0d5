package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// UpdateEntryInput represents the input for entry update.
// Nil fields keep their current value.
type UpdateEntryInput struct {
	EntryID     uuid.UUID
	WalletID    *uuid.UUID
	CategoryID  *uuid.UUID
	Type        *entity.EntryType
	Status      *entity.EntryStatus
	Amount      *valueobject.Money
	Date        *time.Time
	Description *string
}

// UpdateEntryOutput represents the output of entry update.
type UpdateEntryOutput struct {
	Entry *entity.LedgerEntry
}

// UpdateEntryUseCase changes any subset of an entry's fields. The balance
// effect of the old values is fully reversed and the effect of the new values
// fully applied, as a single per-wallet delta.
type UpdateEntryUseCase struct {
	transactor   adapter.Transactor
	locker       adapter.WalletLocker
	walletRepo   adapter.WalletRepository
	entryRepo    adapter.LedgerEntryRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	walletRepo adapter.WalletRepository,
	entryRepo adapter.LedgerEntryRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		transactor:   transactor,
		locker:       locker,
		walletRepo:   walletRepo,
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	current, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, entryLookupError(err)
	}

	walletIDs := []uuid.UUID{current.WalletID}
	if input.WalletID != nil {
		walletIDs = append(walletIDs, *input.WalletID)
	}

	ctx, unlock, err := LockWallets(ctx, uc.locker, walletIDs...)
	if err != nil {
		return nil, err
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
		old := snapshotOf(entry)

		if err := uc.apply(ctx, entry, input); err != nil {
			return err
		}

		if err := validateEntryFields(entry.Type, entry.Status, entry.Amount, entry.Description); err != nil {
			return err
		}

		if err := uc.entryRepo.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		return applyDeltas(ctx, uc.walletRepo, balanceDeltas(old, snapshotOf(entry)))
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Ledger entry updated",
		"entry_id", entry.ID,
		"wallet_id", entry.WalletID,
		"type", entry.Type,
		"status", entry.Status,
		"amount", entry.Amount.String(),
	)

	return &UpdateEntryOutput{
		Entry: entry,
	}, nil
}

// apply copies the requested changes onto entry, checking that new references exist.
func (uc *UpdateEntryUseCase) apply(ctx context.Context, entry *entity.LedgerEntry, input UpdateEntryInput) error {
	if input.WalletID != nil && *input.WalletID != entry.WalletID {
		if _, err := uc.walletRepo.FindByID(ctx, *input.WalletID); err != nil {
			return walletLookupError(err)
		}
		entry.WalletID = *input.WalletID
	}

	if input.CategoryID != nil && *input.CategoryID != entry.CategoryID {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return categoryLookupError(err)
		}
		entry.CategoryID = *input.CategoryID
	}

	if input.Type != nil {
		entry.Type = *input.Type
	}
	if input.Status != nil {
		entry.Status = *input.Status
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}

	return nil
}
