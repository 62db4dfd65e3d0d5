// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
type WalletRepository interface {
	// Create creates a new wallet in the database.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// FindByID retrieves a wallet by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error)

	// FindAll retrieves all wallets ordered by name.
	FindAll(ctx context.Context, includeArchived bool) ([]*entity.Wallet, error)

	// ExistsByName checks whether another wallet already uses the name (case-insensitive).
	// The wallet with excludeID is ignored, pass uuid.Nil to check all wallets.
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	// Update persists the wallet if its version still matches the stored one and bumps the version.
	// Returns domainerror.ErrWalletVersionConflict otherwise.
	Update(ctx context.Context, wallet *entity.Wallet) error

	// Delete removes a wallet from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
