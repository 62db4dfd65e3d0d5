// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// MaxWalletNameLength is the maximum allowed length for wallet names.
const MaxWalletNameLength = 50

// CreateWalletInput represents the input for wallet creation.
type CreateWalletInput struct {
	Name           string
	InitialBalance valueobject.Money
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet *entity.Wallet
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(walletRepo adapter.WalletRepository) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet creation.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
	name, err := validateWalletName(ctx, uc.walletRepo, input.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	wallet := entity.NewWallet(name, input.InitialBalance)
	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	slog.Info("Wallet created",
		"wallet_id", wallet.ID,
		"name", wallet.Name,
		"balance", wallet.Balance.String(),
	)

	return &CreateWalletOutput{
		Wallet: wallet,
	}, nil
}

// validateWalletName trims the name and checks it is present, short enough and
// not used by any wallet other than excludeID.
func validateWalletName(ctx context.Context, walletRepo adapter.WalletRepository, raw string, excludeID uuid.UUID) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameRequired,
			"wallet name is required",
			domainerror.ErrWalletNameRequired,
		)
	}

	if len(name) > MaxWalletNameLength {
		return "", domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameTooLong,
			fmt.Sprintf("wallet name must not exceed %d characters", MaxWalletNameLength),
			domainerror.ErrWalletNameTooLong,
		)
	}

	exists, err := walletRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check wallet name: %w", err)
	}
	if exists {
		return "", domainerror.NewWalletError(
			domainerror.ErrCodeWalletNameExists,
			"a wallet with this name already exists",
			domainerror.ErrWalletNameExists,
		)
	}

	return name, nil
}
