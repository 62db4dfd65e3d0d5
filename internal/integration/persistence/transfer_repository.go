package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// transferRepository implements the adapter.TransferRepository interface.
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository instance.
func NewTransferRepository(db *gorm.DB) adapter.TransferRepository {
	return &transferRepository{
		db: db,
	}
}

// Create creates a new transfer in the database.
func (r *transferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	transferModel := model.TransferFromEntity(transfer)
	return conn(ctx, r.db).Create(transferModel).Error
}

// FindByWallet retrieves the transfers where the wallet is sender or receiver, newest first.
func (r *transferRepository) FindByWallet(ctx context.Context, walletID uuid.UUID) ([]*entity.Transfer, error) {
	var transferModels []model.TransferModel
	result := conn(ctx, r.db).
		Where("sender_wallet_id = ? OR receiver_wallet_id = ?", walletID, walletID).
		Order("date DESC, created_at DESC").
		Find(&transferModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transfers := make([]*entity.Transfer, len(transferModels))
	for i := range transferModels {
		transfers[i] = transferModels[i].ToEntity()
	}
	return transfers, nil
}

// CountByWallet counts the transfer legs referencing a wallet.
func (r *transferRepository) CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	var count int64
	result := conn(ctx, r.db).
		Model(&model.TransferModel{}).
		Where("sender_wallet_id = ? OR receiver_wallet_id = ?", walletID, walletID).
		Count(&count)
	return count, result.Error
}
