package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetEntryInput represents the input for retrieving an entry.
type GetEntryInput struct {
	EntryID uuid.UUID
}

// GetEntryOutput represents the output of retrieving an entry.
type GetEntryOutput struct {
	Entry *entity.LedgerEntry
}

// GetEntryUseCase retrieves a single entry.
type GetEntryUseCase struct {
	entryRepo adapter.LedgerEntryRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(entryRepo adapter.LedgerEntryRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute retrieves the entry.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
	entry, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, entryLookupError(err)
	}

	return &GetEntryOutput{
		Entry: entry,
	}, nil
}

// ListEntriesInput represents the input for listing entries.
type ListEntriesInput struct {
	Filter adapter.EntryFilter
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries []*entity.LedgerEntry
}

// ListEntriesUseCase lists entries matching a filter.
type ListEntriesUseCase struct {
	entryRepo adapter.LedgerEntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.LedgerEntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute lists the entries, newest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.entryRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}
