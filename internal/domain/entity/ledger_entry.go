package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// EntryType represents the direction of a ledger entry (income or expense).
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// IsValid reports whether t is a known entry type.
func (t EntryType) IsValid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// EntryStatus represents whether an entry already affected its wallet balance.
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "pending"
	EntryStatusConfirmed EntryStatus = "confirmed"
)

// IsValid reports whether s is a known entry status.
func (s EntryStatus) IsValid() bool {
	return s == EntryStatusPending || s == EntryStatusConfirmed
}

// LedgerEntry is a single income or expense record against one wallet.
type LedgerEntry struct {
	ID                  uuid.UUID
	WalletID            uuid.UUID
	CategoryID          uuid.UUID
	Type                EntryType
	Status              EntryStatus
	Amount              valueobject.Money // Always positive; Type gives the sign
	Date                time.Time
	Description         string
	RecurringTemplateID *uuid.UUID // Set when generated by the scheduler
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewLedgerEntry creates a new LedgerEntry entity.
func NewLedgerEntry(
	walletID uuid.UUID,
	categoryID uuid.UUID,
	entryType EntryType,
	status EntryStatus,
	amount valueobject.Money,
	date time.Time,
	description string,
) *LedgerEntry {
	now := time.Now().UTC()

	return &LedgerEntry{
		ID:          uuid.New(),
		WalletID:    walletID,
		CategoryID:  categoryID,
		Type:        entryType,
		Status:      status,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsConfirmed reports whether the entry currently affects its wallet balance.
func (e *LedgerEntry) IsConfirmed() bool {
	return e.Status == EntryStatusConfirmed
}

// SignedAmount returns +amount for income and -amount for expense.
func (e *LedgerEntry) SignedAmount() valueobject.Money {
	return SignedAmount(e.Type, e.Amount)
}

// SignedAmount returns the balance effect of a confirmed entry of the given type.
func SignedAmount(entryType EntryType, amount valueobject.Money) valueobject.Money {
	if entryType == EntryTypeExpense {
		return amount.Neg()
	}
	return amount
}
