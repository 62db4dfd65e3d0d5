package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransferMoneyInput represents the input for a transfer between wallets.
type TransferMoneyInput struct {
	SenderWalletID   uuid.UUID
	ReceiverWalletID uuid.UUID
	Amount           valueobject.Money
	Date             time.Time
	Description      string
}

// TransferMoneyOutput represents the output of a transfer.
type TransferMoneyOutput struct {
	Transfer *entity.Transfer
}

// TransferMoneyUseCase debits one wallet and credits another atomically.
type TransferMoneyUseCase struct {
	transactor   adapter.Transactor
	locker       adapter.WalletLocker
	walletRepo   adapter.WalletRepository
	transferRepo adapter.TransferRepository
}

// NewTransferMoneyUseCase creates a new TransferMoneyUseCase instance.
func NewTransferMoneyUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	walletRepo adapter.WalletRepository,
	transferRepo adapter.TransferRepository,
) *TransferMoneyUseCase {
	return &TransferMoneyUseCase{
		transactor:   transactor,
		locker:       locker,
		walletRepo:   walletRepo,
		transferRepo: transferRepo,
	}
}

// Execute performs the transfer.
func (uc *TransferMoneyUseCase) Execute(ctx context.Context, input TransferMoneyInput) (*TransferMoneyOutput, error) {
	if input.SenderWalletID == input.ReceiverWalletID {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeSameWalletTransfer,
			"sender and receiver wallets must be different",
			domainerror.ErrSameWalletTransfer,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidTransferAmount,
			"transfer amount must be greater than zero",
			domainerror.ErrInvalidTransferAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrEntryDescriptionTooLong,
		)
	}

	ctx, unlock, err := LockWallets(ctx, uc.locker, input.SenderWalletID, input.ReceiverWalletID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var transfer *entity.Transfer
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		sender, err := uc.walletRepo.FindByID(ctx, input.SenderWalletID)
		if err != nil {
			return walletLookupError(err)
		}

		if _, err := uc.walletRepo.FindByID(ctx, input.ReceiverWalletID); err != nil {
			return walletLookupError(err)
		}

		if sender.Balance.LessThan(input.Amount) {
			return domainerror.NewWalletError(
				domainerror.ErrCodeInsufficientBalance,
				fmt.Sprintf("sender balance %s is lower than %s", sender.Balance, input.Amount),
				domainerror.ErrInsufficientBalance,
			)
		}

		transfer = entity.NewTransfer(input.SenderWalletID, input.ReceiverWalletID, input.Amount, input.Date, input.Description)
		if err := uc.transferRepo.Create(ctx, transfer); err != nil {
			return fmt.Errorf("failed to create transfer: %w", err)
		}

		return applyDeltas(ctx, uc.walletRepo, map[uuid.UUID]valueobject.Money{
			input.SenderWalletID:   input.Amount.Neg(),
			input.ReceiverWalletID: input.Amount,
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Transfer completed",
		"transfer_id", transfer.ID,
		"sender_wallet_id", transfer.SenderWalletID,
		"receiver_wallet_id", transfer.ReceiverWalletID,
		"amount", transfer.Amount.String(),
	)

	return &TransferMoneyOutput{
		Transfer: transfer,
	}, nil
}

// ListTransfersInput represents the input for listing a wallet's transfers.
type ListTransfersInput struct {
	WalletID uuid.UUID
}

// ListTransfersOutput represents the output of listing transfers.
type ListTransfersOutput struct {
	Transfers []*entity.Transfer
}

// ListTransfersUseCase lists the transfers a wallet sent or received.
type ListTransfersUseCase struct {
	walletRepo   adapter.WalletRepository
	transferRepo adapter.TransferRepository
}

// NewListTransfersUseCase creates a new ListTransfersUseCase instance.
func NewListTransfersUseCase(walletRepo adapter.WalletRepository, transferRepo adapter.TransferRepository) *ListTransfersUseCase {
	return &ListTransfersUseCase{
		walletRepo:   walletRepo,
		transferRepo: transferRepo,
	}
}

// Execute lists the transfers, newest first.
func (uc *ListTransfersUseCase) Execute(ctx context.Context, input ListTransfersInput) (*ListTransfersOutput, error) {
	if _, err := uc.walletRepo.FindByID(ctx, input.WalletID); err != nil {
		return nil, walletLookupError(err)
	}

	transfers, err := uc.transferRepo.FindByWallet(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	return &ListTransfersOutput{
		Transfers: transfers,
	}, nil
}
