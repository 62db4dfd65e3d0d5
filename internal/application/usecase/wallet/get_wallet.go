package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetWalletInput represents the input for fetching a wallet.
type GetWalletInput struct {
	WalletID uuid.UUID
}

// GetWalletOutput represents the output of fetching a wallet.
type GetWalletOutput struct {
	Wallet *entity.Wallet
}

// GetWalletUseCase fetches a single wallet.
type GetWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewGetWalletUseCase creates a new GetWalletUseCase instance.
func NewGetWalletUseCase(walletRepo adapter.WalletRepository) *GetWalletUseCase {
	return &GetWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute fetches the wallet.
func (uc *GetWalletUseCase) Execute(ctx context.Context, input GetWalletInput) (*GetWalletOutput, error) {
	wallet, err := findWallet(ctx, uc.walletRepo, input.WalletID)
	if err != nil {
		return nil, err
	}

	return &GetWalletOutput{
		Wallet: wallet,
	}, nil
}

// ListWalletsInput represents the input for listing wallets.
type ListWalletsInput struct {
	IncludeArchived bool
}

// ListWalletsOutput represents the output of listing wallets.
type ListWalletsOutput struct {
	Wallets []*entity.Wallet
}

// ListWalletsUseCase lists wallets ordered by name.
type ListWalletsUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(walletRepo adapter.WalletRepository) *ListWalletsUseCase {
	return &ListWalletsUseCase{
		walletRepo: walletRepo,
	}
}

// Execute lists the wallets.
func (uc *ListWalletsUseCase) Execute(ctx context.Context, input ListWalletsInput) (*ListWalletsOutput, error) {
	wallets, err := uc.walletRepo.FindAll(ctx, input.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	return &ListWalletsOutput{
		Wallets: wallets,
	}, nil
}
