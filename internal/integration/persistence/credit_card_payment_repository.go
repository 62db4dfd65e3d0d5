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
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// creditCardPaymentRepository implements the adapter.CreditCardPaymentRepository interface.
type creditCardPaymentRepository struct {
	db *gorm.DB
}

// NewCreditCardPaymentRepository creates a new credit card payment repository instance.
func NewCreditCardPaymentRepository(db *gorm.DB) adapter.CreditCardPaymentRepository {
	return &creditCardPaymentRepository{
		db: db,
	}
}

// cardPayments scopes a query to the payments of every debt of the card.
func (r *creditCardPaymentRepository) cardPayments(ctx context.Context, cardID uuid.UUID) *gorm.DB {
	debtIDs := conn(ctx, r.db).
		Model(&model.CreditCardDebtModel{}).
		Select("id").
		Where("credit_card_id = ?", cardID)

	return conn(ctx, r.db).
		Model(&model.CreditCardPaymentModel{}).
		Where("debt_id IN (?)", debtIDs)
}

// CreateBatch creates all installments of a debt.
func (r *creditCardPaymentRepository) CreateBatch(ctx context.Context, payments []*entity.CreditCardPayment) error {
	if len(payments) == 0 {
		return nil
	}

	paymentModels := make([]*model.CreditCardPaymentModel, len(payments))
	for i, p := range payments {
		paymentModels[i] = model.CreditCardPaymentFromEntity(p)
	}
	return conn(ctx, r.db).CreateInBatches(paymentModels, 100).Error
}

// FindByID retrieves a payment by its ID.
func (r *creditCardPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCardPayment, error) {
	var paymentModel model.CreditCardPaymentModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCreditCardPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByDebt retrieves the installments of a debt ordered by index.
func (r *creditCardPaymentRepository) FindByDebt(ctx context.Context, debtID uuid.UUID) ([]*entity.CreditCardPayment, error) {
	var paymentModels []model.CreditCardPaymentModel
	result := conn(ctx, r.db).
		Where("debt_id = ?", debtID).
		Order("installment_index ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toPaymentEntities(paymentModels), nil
}

// FindByCardAndMonth retrieves a card's payments due in the given month ordered by due date.
func (r *creditCardPaymentRepository) FindByCardAndMonth(
	ctx context.Context,
	cardID uuid.UUID,
	month time.Month,
	year int,
	pendingOnly bool,
) ([]*entity.CreditCardPayment, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := r.cardPayments(ctx, cardID).
		Where("due_date >= ? AND due_date < ?", start, end)
	if pendingOnly {
		query = query.Where("settling_wallet_id IS NULL")
	}

	var paymentModels []model.CreditCardPaymentModel
	if err := query.Order("due_date ASC, installment_index ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return toPaymentEntities(paymentModels), nil
}

// SumPaidByCard sums the amount of every settled payment of a card.
func (r *creditCardPaymentRepository) SumPaidByCard(ctx context.Context, cardID uuid.UUID) (valueobject.Money, error) {
	var total valueobject.Money
	err := r.cardPayments(ctx, cardID).
		Select("COALESCE(SUM(amount), 0)").
		Where("settling_wallet_id IS NOT NULL").
		Row().
		Scan(&total)
	if err != nil {
		return valueobject.Zero, err
	}
	return total, nil
}

// CountPendingByCard counts the unsettled payments of a card.
func (r *creditCardPaymentRepository) CountPendingByCard(ctx context.Context, cardID uuid.UUID) (int64, error) {
	var count int64
	result := r.cardPayments(ctx, cardID).
		Where("settling_wallet_id IS NULL").
		Count(&count)
	return count, result.Error
}

// FindNextPendingDueDate returns the earliest due date among a card's pending payments.
func (r *creditCardPaymentRepository) FindNextPendingDueDate(ctx context.Context, cardID uuid.UUID) (*time.Time, error) {
	var paymentModel model.CreditCardPaymentModel
	result := r.cardPayments(ctx, cardID).
		Where("settling_wallet_id IS NULL").
		Order("due_date ASC").
		First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &paymentModel.DueDate, nil
}

// Settle stores the settling wallet of a payment that is still pending.
func (r *creditCardPaymentRepository) Settle(ctx context.Context, payment *entity.CreditCardPayment) error {
	if !payment.IsPaid() {
		return errors.New("payment has no settling wallet")
	}

	result := conn(ctx, r.db).Model(&model.CreditCardPaymentModel{}).
		Where("id = ? AND settling_wallet_id IS NULL", payment.ID).
		Updates(map[string]interface{}{
			"settling_wallet_id": *payment.SettlingWalletID,
			"settled_at":         *payment.SettledAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := conn(ctx, r.db).Model(&model.CreditCardPaymentModel{}).Where("id = ?", payment.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerror.ErrCreditCardPaymentNotFound
	}
	return domainerror.ErrPaymentAlreadySettled
}

// DeleteByDebt removes every installment of a debt.
func (r *creditCardPaymentRepository) DeleteByDebt(ctx context.Context, debtID uuid.UUID) error {
	return conn(ctx, r.db).Delete(&model.CreditCardPaymentModel{}, "debt_id = ?", debtID).Error
}

func toPaymentEntities(paymentModels []model.CreditCardPaymentModel) []*entity.CreditCardPayment {
	payments := make([]*entity.CreditCardPayment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToEntity()
	}
	return payments
}
