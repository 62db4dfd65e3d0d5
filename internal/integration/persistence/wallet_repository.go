package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// Create creates a new wallet in the database.
func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	return conn(ctx, r.db).Create(walletModel).Error
}

// FindByID retrieves a wallet by its ID.
func (r *walletRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&walletModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWalletNotFound
		}
		return nil, result.Error
	}
	return walletModel.ToEntity(), nil
}

// FindAll retrieves all wallets ordered by name.
func (r *walletRepository) FindAll(ctx context.Context, includeArchived bool) ([]*entity.Wallet, error) {
	var walletModels []model.WalletModel
	query := conn(ctx, r.db).Order("name ASC")
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}
	if err := query.Find(&walletModels).Error; err != nil {
		return nil, err
	}

	wallets := make([]*entity.Wallet, len(walletModels))
	for i := range walletModels {
		wallets[i] = walletModels[i].ToEntity()
	}
	return wallets, nil
}

// ExistsByName checks whether another wallet already uses the name (case-insensitive).
func (r *walletRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := conn(ctx, r.db).
		Model(&model.WalletModel{}).
		Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists the wallet when the stored version matches and bumps the version.
func (r *walletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	now := time.Now().UTC()
	result := conn(ctx, r.db).
		Model(&model.WalletModel{}).
		Where("id = ? AND version = ?", wallet.ID, wallet.Version).
		Updates(map[string]interface{}{
			"name":       wallet.Name,
			"balance":    wallet.Balance.Decimal(),
			"archived":   wallet.Archived,
			"version":    wallet.Version + 1,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWalletVersionConflict
	}

	wallet.Version++
	wallet.UpdatedAt = now
	return nil
}

// Delete removes a wallet from the database.
func (r *walletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&model.WalletModel{}, "id = ?", id).Error
}
