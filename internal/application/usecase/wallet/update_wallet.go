package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// RenameWalletInput represents the input for renaming a wallet.
type RenameWalletInput struct {
	WalletID uuid.UUID
	Name     string
}

// SetArchivedInput represents the input for archiving or restoring a wallet.
type SetArchivedInput struct {
	WalletID uuid.UUID
	Archived bool
}

// UpdateWalletOutput represents the output of a wallet update.
type UpdateWalletOutput struct {
	Wallet *entity.Wallet
}

// UpdateWalletUseCase renames, archives and unarchives wallets.
// Balances are never touched here; they belong to the ledger use cases.
type UpdateWalletUseCase struct {
	locker     adapter.WalletLocker
	walletRepo adapter.WalletRepository
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(locker adapter.WalletLocker, walletRepo adapter.WalletRepository) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		locker:     locker,
		walletRepo: walletRepo,
	}
}

// Rename changes the wallet name.
func (uc *UpdateWalletUseCase) Rename(ctx context.Context, input RenameWalletInput) (*UpdateWalletOutput, error) {
	return uc.mutate(ctx, input.WalletID, func(wallet *entity.Wallet) error {
		name, err := validateWalletName(ctx, uc.walletRepo, input.Name, wallet.ID)
		if err != nil {
			return err
		}
		wallet.Name = name
		return nil
	})
}

// SetArchived archives or unarchives the wallet.
func (uc *UpdateWalletUseCase) SetArchived(ctx context.Context, input SetArchivedInput) (*UpdateWalletOutput, error) {
	return uc.mutate(ctx, input.WalletID, func(wallet *entity.Wallet) error {
		wallet.Archived = input.Archived
		return nil
	})
}

func (uc *UpdateWalletUseCase) mutate(ctx context.Context, walletID uuid.UUID, change func(*entity.Wallet) error) (*UpdateWalletOutput, error) {
	ctx, unlock, err := ledger.LockWallets(ctx, uc.locker, walletID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	wallet, err := findWallet(ctx, uc.walletRepo, walletID)
	if err != nil {
		return nil, err
	}

	if err := change(wallet); err != nil {
		return nil, err
	}

	if err := uc.walletRepo.Update(ctx, wallet); err != nil {
		if errors.Is(err, domainerror.ErrWalletVersionConflict) {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletVersionConflict,
				"wallet was modified by another operation, retry",
				domainerror.ErrWalletVersionConflict,
			)
		}
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	slog.Info("Wallet updated",
		"wallet_id", wallet.ID,
		"name", wallet.Name,
		"archived", wallet.Archived,
	)

	return &UpdateWalletOutput{
		Wallet: wallet,
	}, nil
}

// findWallet loads a wallet, converting a missing row into a coded error.
func findWallet(ctx context.Context, walletRepo adapter.WalletRepository, walletID uuid.UUID) (*entity.Wallet, error) {
	wallet, err := walletRepo.FindByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletNotFound,
				"wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	return wallet, nil
}
