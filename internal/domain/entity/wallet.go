// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Wallet is an account holding money whose balance is maintained by the ledger engine.
type Wallet struct {
	ID        uuid.UUID
	Name      string
	Balance   valueobject.Money
	Archived  bool
	Version   int64 // Optimistic concurrency token, bumped on every update
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWallet creates a new Wallet entity with the given opening balance.
func NewWallet(name string, balance valueobject.Money) *Wallet {
	now := time.Now().UTC()

	return &Wallet{
		ID:        uuid.New(),
		Name:      name,
		Balance:   balance,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Credit increases the balance by amount.
func (w *Wallet) Credit(amount valueobject.Money) {
	w.Balance = w.Balance.Add(amount)
}

// Debit decreases the balance by amount.
func (w *Wallet) Debit(amount valueobject.Money) {
	w.Balance = w.Balance.Sub(amount)
}
