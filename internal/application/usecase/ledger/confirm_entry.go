package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ConfirmEntryInput represents the input for entry confirmation.
type ConfirmEntryInput struct {
	EntryID uuid.UUID
}

// ConfirmEntryOutput represents the output of entry confirmation.
type ConfirmEntryOutput struct {
	Entry *entity.LedgerEntry
}

// ConfirmEntryUseCase turns a pending entry into a confirmed one and applies its effect.
type ConfirmEntryUseCase struct {
	transactor adapter.Transactor
	locker     adapter.WalletLocker
	walletRepo adapter.WalletRepository
	entryRepo  adapter.LedgerEntryRepository
}

// NewConfirmEntryUseCase creates a new ConfirmEntryUseCase instance.
func NewConfirmEntryUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	walletRepo adapter.WalletRepository,
	entryRepo adapter.LedgerEntryRepository,
) *ConfirmEntryUseCase {
	return &ConfirmEntryUseCase{
		transactor: transactor,
		locker:     locker,
		walletRepo: walletRepo,
		entryRepo:  entryRepo,
	}
}

// Execute performs the entry confirmation. Confirming twice is an error.
func (uc *ConfirmEntryUseCase) Execute(ctx context.Context, input ConfirmEntryInput) (*ConfirmEntryOutput, error) {
	current, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, entryLookupError(err)
	}

	ctx, unlock, err := LockWallets(ctx, uc.locker, current.WalletID)
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

		if entry.IsConfirmed() {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryAlreadyConfirmed,
				"entry is already confirmed",
				domainerror.ErrEntryAlreadyConfirmed,
			)
		}

		old := snapshotOf(entry)
		entry.Status = entity.EntryStatusConfirmed

		if err := uc.entryRepo.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		return applyDeltas(ctx, uc.walletRepo, balanceDeltas(old, snapshotOf(entry)))
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Ledger entry confirmed",
		"entry_id", entry.ID,
		"wallet_id", entry.WalletID,
		"amount", entry.Amount.String(),
	)

	return &ConfirmEntryOutput{
		Entry: entry,
	}, nil
}
