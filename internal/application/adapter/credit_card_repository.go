package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreditCardRepository defines the interface for credit card persistence operations.
type CreditCardRepository interface {
	// Create creates a new credit card in the database.
	Create(ctx context.Context, card *entity.CreditCard) error

	// FindByID retrieves a credit card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)

	// FindAll retrieves all credit cards ordered by name.
	FindAll(ctx context.Context, includeArchived bool) ([]*entity.CreditCard, error)

	// ExistsByName checks whether another card already uses the name (case-insensitive).
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	// Update updates an existing credit card in the database.
	Update(ctx context.Context, card *entity.CreditCard) error

	// Delete removes a credit card from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreditCardDebtRepository defines the interface for credit card debt persistence operations.
type CreditCardDebtRepository interface {
	// Create creates a new debt in the database.
	Create(ctx context.Context, debt *entity.CreditCardDebt) error

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCardDebt, error)

	// FindByCard retrieves the debts of a card, newest first.
	FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.CreditCardDebt, error)

	// CountByCard counts the debts registered on a card.
	CountByCard(ctx context.Context, cardID uuid.UUID) (int64, error)

	// SumTotalByCard sums the total amount of every debt registered on a card.
	SumTotalByCard(ctx context.Context, cardID uuid.UUID) (valueobject.Money, error)

	// Delete removes a debt from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreditCardPaymentRepository defines the interface for installment payment persistence operations.
type CreditCardPaymentRepository interface {
	// CreateBatch creates all installments of a debt.
	CreateBatch(ctx context.Context, payments []*entity.CreditCardPayment) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCardPayment, error)

	// FindByDebt retrieves the installments of a debt ordered by index.
	FindByDebt(ctx context.Context, debtID uuid.UUID) ([]*entity.CreditCardPayment, error)

	// FindByCardAndMonth retrieves a card's payments due in the given month ordered by due date.
	FindByCardAndMonth(ctx context.Context, cardID uuid.UUID, month time.Month, year int, pendingOnly bool) ([]*entity.CreditCardPayment, error)

	// SumPaidByCard sums the amount of every settled payment of a card.
	SumPaidByCard(ctx context.Context, cardID uuid.UUID) (valueobject.Money, error)

	// CountPendingByCard counts the unsettled payments of a card.
	CountPendingByCard(ctx context.Context, cardID uuid.UUID) (int64, error)

	// FindNextPendingDueDate returns the earliest due date among a card's pending payments, nil when none.
	FindNextPendingDueDate(ctx context.Context, cardID uuid.UUID) (*time.Time, error)

	// Settle stores the settling wallet of a pending payment. Returns
	// domainerror.ErrPaymentAlreadySettled when the payment is no longer pending
	// and domainerror.ErrCreditCardPaymentNotFound when it no longer exists.
	Settle(ctx context.Context, payment *entity.CreditCardPayment) error

	// DeleteByDebt removes every installment of a debt.
	DeleteByDebt(ctx context.Context, debtID uuid.UUID) error
}
