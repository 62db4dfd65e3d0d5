package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// ledgerEntryRepository implements the adapter.LedgerEntryRepository interface.
type ledgerEntryRepository struct {
	db *gorm.DB
}

// NewLedgerEntryRepository creates a new ledger entry repository instance.
func NewLedgerEntryRepository(db *gorm.DB) adapter.LedgerEntryRepository {
	return &ledgerEntryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *ledgerEntryRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	return conn(ctx, r.db).Create(entryModel).Error
}

// FindByID retrieves an entry by its ID.
func (r *ledgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntryModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByFilter retrieves entries matching the filter, newest first.
func (r *ledgerEntryRepository) FindByFilter(ctx context.Context, filter adapter.EntryFilter) ([]*entity.LedgerEntry, error) {
	query := conn(ctx, r.db).Model(&model.LedgerEntryModel{})

	if filter.WalletID != nil {
		query = query.Where("wallet_id = ?", *filter.WalletID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var entryModels []model.LedgerEntryModel
	if err := query.Order("date DESC, created_at DESC").Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}
	return entries, nil
}

// Update updates an existing entry in the database.
func (r *ledgerEntryRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	entryModel := model.LedgerEntryFromEntity(entry)
	return conn(ctx, r.db).Save(entryModel).Error
}

// Delete removes an entry from the database.
func (r *ledgerEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&model.LedgerEntryModel{}, "id = ?", id).Error
}

// CountByWallet counts the entries referencing a wallet.
func (r *ledgerEntryRepository) CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	var count int64
	result := conn(ctx, r.db).
		Model(&model.LedgerEntryModel{}).
		Where("wallet_id = ?", walletID).
		Count(&count)
	return count, result.Error
}

// ExistsByTemplateAndDate checks whether a recurring template already produced an entry on dueDate.
func (r *ledgerEntryRepository) ExistsByTemplateAndDate(ctx context.Context, templateID uuid.UUID, dueDate time.Time) (bool, error) {
	var count int64
	result := conn(ctx, r.db).
		Model(&model.LedgerEntryModel{}).
		Where("recurring_template_id = ? AND date = ?", templateID, dueDate).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
