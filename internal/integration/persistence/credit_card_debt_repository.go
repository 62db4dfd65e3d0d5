package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// creditCardDebtRepository implements the adapter.CreditCardDebtRepository interface.
type creditCardDebtRepository struct {
	db *gorm.DB
}

// NewCreditCardDebtRepository creates a new credit card debt repository instance.
func NewCreditCardDebtRepository(db *gorm.DB) adapter.CreditCardDebtRepository {
	return &creditCardDebtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *creditCardDebtRepository) Create(ctx context.Context, debt *entity.CreditCardDebt) error {
	debtModel := model.CreditCardDebtFromEntity(debt)
	return conn(ctx, r.db).Create(debtModel).Error
}

// FindByID retrieves a debt by its ID.
func (r *creditCardDebtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCardDebt, error) {
	var debtModel model.CreditCardDebtModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCreditCardDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByCard retrieves the debts of a card, newest first.
func (r *creditCardDebtRepository) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.CreditCardDebt, error) {
	var debtModels []model.CreditCardDebtModel
	result := conn(ctx, r.db).
		Where("credit_card_id = ?", cardID).
		Order("date DESC, created_at DESC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.CreditCardDebt, len(debtModels))
	for i := range debtModels {
		debts[i] = debtModels[i].ToEntity()
	}
	return debts, nil
}

// CountByCard counts the debts registered on a card.
func (r *creditCardDebtRepository) CountByCard(ctx context.Context, cardID uuid.UUID) (int64, error) {
	var count int64
	result := conn(ctx, r.db).
		Model(&model.CreditCardDebtModel{}).
		Where("credit_card_id = ?", cardID).
		Count(&count)
	return count, result.Error
}

// SumTotalByCard sums the total amount of every debt registered on a card.
func (r *creditCardDebtRepository) SumTotalByCard(ctx context.Context, cardID uuid.UUID) (valueobject.Money, error) {
	var total valueobject.Money
	err := conn(ctx, r.db).
		Model(&model.CreditCardDebtModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("credit_card_id = ?", cardID).
		Row().
		Scan(&total)
	if err != nil {
		return valueobject.Zero, err
	}
	return total, nil
}

// Delete removes a debt from the database.
func (r *creditCardDebtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&model.CreditCardDebtModel{}, "id = ?", id).Error
}
