package creditcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// RegisterDebtInput represents the input for registering a purchase on a card.
type RegisterDebtInput struct {
	CreditCardID     uuid.UUID
	CategoryID       uuid.UUID
	Date             time.Time
	TotalAmount      valueobject.Money
	InstallmentCount int
	Description      string
}

// RegisterDebtOutput represents the output of debt registration.
type RegisterDebtOutput struct {
	Debt     *entity.CreditCardDebt
	Payments []*entity.CreditCardPayment
}

// RegisterDebtUseCase records a debt and its installment payments against the card limit.
type RegisterDebtUseCase struct {
	transactor      adapter.Transactor
	locker          adapter.WalletLocker
	cardRepo        adapter.CreditCardRepository
	debtRepo        adapter.CreditCardDebtRepository
	paymentRepo     adapter.CreditCardPaymentRepository
	categoryRepo    adapter.CategoryRepository
	maxInstallments int
}

// NewRegisterDebtUseCase creates a new RegisterDebtUseCase instance.
// A non-positive maxInstallments falls back to DefaultMaxInstallments.
func NewRegisterDebtUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	cardRepo adapter.CreditCardRepository,
	debtRepo adapter.CreditCardDebtRepository,
	paymentRepo adapter.CreditCardPaymentRepository,
	categoryRepo adapter.CategoryRepository,
	maxInstallments int,
) *RegisterDebtUseCase {
	if maxInstallments <= 0 {
		maxInstallments = DefaultMaxInstallments
	}

	return &RegisterDebtUseCase{
		transactor:      transactor,
		locker:          locker,
		cardRepo:        cardRepo,
		debtRepo:        debtRepo,
		paymentRepo:     paymentRepo,
		categoryRepo:    categoryRepo,
		maxInstallments: maxInstallments,
	}
}

// Execute validates the debt, then creates it together with every installment in one transaction.
func (uc *RegisterDebtUseCase) Execute(ctx context.Context, input RegisterDebtInput) (*RegisterDebtOutput, error) {
	if input.TotalAmount.IsNegative() {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidDebtAmount,
			"debt amount must not be negative",
			domainerror.ErrInvalidDebtAmount,
		)
	}

	if input.InstallmentCount < 1 || input.InstallmentCount > uc.maxInstallments {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidInstallmentCount,
			fmt.Sprintf("installment count must be in the range [1, %d]", uc.maxInstallments),
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	// Card IDs share the locker keyspace with wallets; the check against the
	// available credit and the insert must not interleave with another debt.
	unlock, err := uc.locker.Lock(ctx, input.CreditCardID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock credit card: %w", err)
	}
	defer unlock()

	var output RegisterDebtOutput
	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		card, err := findCard(ctx, uc.cardRepo, input.CreditCardID)
		if err != nil {
			return err
		}

		if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return domainerror.NewCreditCardError(
					domainerror.ErrCodeDebtCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFound,
				)
			}
			return fmt.Errorf("failed to find category: %w", err)
		}

		available, err := availableCredit(ctx, card, uc.debtRepo, uc.paymentRepo)
		if err != nil {
			return err
		}
		if input.TotalAmount.GreaterThan(available) {
			return domainerror.NewCreditCardError(
				domainerror.ErrCodeInsufficientCredit,
				fmt.Sprintf("debt of %s exceeds the available credit of %s", input.TotalAmount, available),
				domainerror.ErrInsufficientCredit,
			)
		}

		debt := entity.NewCreditCardDebt(
			card.ID,
			input.CategoryID,
			input.Date,
			input.TotalAmount,
			input.InstallmentCount,
			input.Description,
		)
		if err := uc.debtRepo.Create(ctx, debt); err != nil {
			return fmt.Errorf("failed to create debt: %w", err)
		}

		payments := debt.Installments(card.BillingDueDay)
		if err := uc.paymentRepo.CreateBatch(ctx, payments); err != nil {
			return fmt.Errorf("failed to create payments: %w", err)
		}

		output.Debt = debt
		output.Payments = payments
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Credit card debt registered",
		"credit_card_id", output.Debt.CreditCardID,
		"debt_id", output.Debt.ID,
		"amount", output.Debt.TotalAmount.String(),
		"installments", output.Debt.InstallmentCount,
	)

	return &output, nil
}
