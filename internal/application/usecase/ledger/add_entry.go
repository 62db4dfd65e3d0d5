package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// AddEntryInput represents the input for entry creation.
type AddEntryInput struct {
	WalletID            uuid.UUID
	CategoryID          uuid.UUID
	Type                entity.EntryType
	Status              entity.EntryStatus
	Amount              valueobject.Money
	Date                time.Time
	Description         string
	RecurringTemplateID *uuid.UUID // Set by the recurring scheduler
}

// AddEntryOutput represents the output of entry creation.
type AddEntryOutput struct {
	Entry *entity.LedgerEntry
}

// AddEntryUseCase records an income or expense and, when confirmed, applies it to the wallet balance.
type AddEntryUseCase struct {
	transactor   adapter.Transactor
	locker       adapter.WalletLocker
	walletRepo   adapter.WalletRepository
	entryRepo    adapter.LedgerEntryRepository
	categoryRepo adapter.CategoryRepository
}

// NewAddEntryUseCase creates a new AddEntryUseCase instance.
func NewAddEntryUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	walletRepo adapter.WalletRepository,
	entryRepo adapter.LedgerEntryRepository,
	categoryRepo adapter.CategoryRepository,
) *AddEntryUseCase {
	return &AddEntryUseCase{
		transactor:   transactor,
		locker:       locker,
		walletRepo:   walletRepo,
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the entry creation.
func (uc *AddEntryUseCase) Execute(ctx context.Context, input AddEntryInput) (*AddEntryOutput, error) {
	if err := validateEntryFields(input.Type, input.Status, input.Amount, input.Description); err != nil {
		return nil, err
	}

	ctx, unlock, err := LockWallets(ctx, uc.locker, input.WalletID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var entry *entity.LedgerEntry
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
		if err != nil {
			return walletLookupError(err)
		}

		if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			return categoryLookupError(err)
		}

		entry = entity.NewLedgerEntry(
			wallet.ID,
			input.CategoryID,
			input.Type,
			input.Status,
			input.Amount,
			input.Date,
			input.Description,
		)
		entry.RecurringTemplateID = input.RecurringTemplateID

		if err := uc.entryRepo.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}

		return applyDeltas(ctx, uc.walletRepo, entryEffects(snapshotOf(entry)))
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Ledger entry created",
		"entry_id", entry.ID,
		"wallet_id", entry.WalletID,
		"type", entry.Type,
		"status", entry.Status,
		"amount", entry.Amount.String(),
	)

	return &AddEntryOutput{
		Entry: entry,
	}, nil
}

// validateEntryFields checks the fields shared by creation and update.
func validateEntryFields(
	entryType entity.EntryType,
	status entity.EntryStatus,
	amount valueobject.Money,
	description string,
) error {
	if !amount.IsPositive() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	if !entryType.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryType,
			"entry type must be 'expense' or 'income'",
			domainerror.ErrInvalidEntryType,
		)
	}

	if !status.IsValid() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryStatus,
			"entry status must be 'pending' or 'confirmed'",
			domainerror.ErrInvalidEntryStatus,
		)
	}

	if len(description) > MaxDescriptionLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrEntryDescriptionTooLong,
		)
	}

	return nil
}
