package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransferRepository defines the interface for transfer persistence operations.
type TransferRepository interface {
	// Create creates a new transfer in the database.
	Create(ctx context.Context, transfer *entity.Transfer) error

	// FindByWallet retrieves the transfers where the wallet is sender or receiver, newest first.
	FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.Transfer, error)

	// CountByWallet counts the transfer legs referencing a wallet.
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error)
}
