package wallet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteWalletInput represents the input for wallet deletion.
type DeleteWalletInput struct {
	WalletID uuid.UUID
}

// DeleteWalletUseCase removes wallets that have no history.
type DeleteWalletUseCase struct {
	transactor   adapter.Transactor
	locker       adapter.WalletLocker
	walletRepo   adapter.WalletRepository
	entryRepo    adapter.LedgerEntryRepository
	transferRepo adapter.TransferRepository
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	walletRepo adapter.WalletRepository,
	entryRepo adapter.LedgerEntryRepository,
	transferRepo adapter.TransferRepository,
) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		transactor:   transactor,
		locker:       locker,
		walletRepo:   walletRepo,
		entryRepo:    entryRepo,
		transferRepo: transferRepo,
	}
}

// Execute deletes the wallet. It is refused while any entry or transfer leg references it.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) error {
	ctx, unlock, err := ledger.LockWallets(ctx, uc.locker, input.WalletID)
	if err != nil {
		return err
	}
	defer unlock()

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := findWallet(ctx, uc.walletRepo, input.WalletID); err != nil {
			return err
		}

		entries, err := uc.entryRepo.CountByWallet(ctx, input.WalletID)
		if err != nil {
			return fmt.Errorf("failed to count wallet entries: %w", err)
		}

		transfers, err := uc.transferRepo.CountByWallet(ctx, input.WalletID)
		if err != nil {
			return fmt.Errorf("failed to count wallet transfers: %w", err)
		}

		if entries > 0 || transfers > 0 {
			return domainerror.NewWalletError(
				domainerror.ErrCodeWalletHasHistory,
				fmt.Sprintf("wallet has %d entries and %d transfers and cannot be deleted", entries, transfers),
				domainerror.ErrWalletHasHistory,
			)
		}

		if err := uc.walletRepo.Delete(ctx, input.WalletID); err != nil {
			return fmt.Errorf("failed to delete wallet: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Wallet deleted", "wallet_id", input.WalletID)

	return nil
}
