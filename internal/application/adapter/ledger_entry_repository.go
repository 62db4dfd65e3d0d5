package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// EntryFilter defines filter options for listing ledger entries.
type EntryFilter struct {
	WalletID   *uuid.UUID
	CategoryID *uuid.UUID
	Type       *entity.EntryType
	Status     *entity.EntryStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

// LedgerEntryRepository defines the interface for ledger entry persistence operations.
type LedgerEntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	// FindByFilter retrieves entries matching the filter, newest first.
	FindByFilter(ctx context.Context, filter EntryFilter) ([]*entity.LedgerEntry, error)

	// Update updates an existing entry in the database.
	Update(ctx context.Context, entry *entity.LedgerEntry) error

	// Delete removes an entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByWallet counts the entries referencing a wallet.
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error)

	// ExistsByTemplateAndDate checks whether a recurring template already produced an entry on dueDate.
	ExistsByTemplateAndDate(ctx context.Context, templateID uuid.UUID, dueDate time.Time) (bool, error)
}
