package creditcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
}

// DeleteDebtUseCase removes a debt together with its installments.
type DeleteDebtUseCase struct {
	transactor  adapter.Transactor
	locker      adapter.WalletLocker
	debtRepo    adapter.CreditCardDebtRepository
	paymentRepo adapter.CreditCardPaymentRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	debtRepo adapter.CreditCardDebtRepository,
	paymentRepo adapter.CreditCardPaymentRepository,
) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		transactor:  transactor,
		locker:      locker,
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute deletes the debt. Debts with a settled installment are kept, since
// the matching wallet expenses already exist.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	debt, err := findDebt(ctx, uc.debtRepo, input.DebtID)
	if err != nil {
		return err
	}

	unlock, err := uc.locker.Lock(ctx, debt.CreditCardID)
	if err != nil {
		return fmt.Errorf("failed to lock credit card: %w", err)
	}
	defer unlock()

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		payments, err := uc.paymentRepo.FindByDebt(ctx, debt.ID)
		if err != nil {
			return fmt.Errorf("failed to find debt payments: %w", err)
		}

		for _, payment := range payments {
			if payment.IsPaid() {
				return domainerror.NewCreditCardError(
					domainerror.ErrCodeDebtHasSettledPayments,
					fmt.Sprintf("installment %d of the debt is already paid", payment.InstallmentIndex),
					domainerror.ErrDebtHasSettledPayments,
				)
			}
		}

		if err := uc.paymentRepo.DeleteByDebt(ctx, debt.ID); err != nil {
			return fmt.Errorf("failed to delete debt payments: %w", err)
		}

		if err := uc.debtRepo.Delete(ctx, debt.ID); err != nil {
			return fmt.Errorf("failed to delete debt: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Credit card debt deleted", "debt_id", debt.ID, "credit_card_id", debt.CreditCardID)

	return nil
}

// ListDebtsInput represents the input for listing a card's debts.
type ListDebtsInput struct {
	CreditCardID uuid.UUID
}

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts []*entity.CreditCardDebt
}

// ListDebtsUseCase lists the debts registered on a card.
type ListDebtsUseCase struct {
	cardRepo adapter.CreditCardRepository
	debtRepo adapter.CreditCardDebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(cardRepo adapter.CreditCardRepository, debtRepo adapter.CreditCardDebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		cardRepo: cardRepo,
		debtRepo: debtRepo,
	}
}

// Execute lists the debts, newest first.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	card, err := findCard(ctx, uc.cardRepo, input.CreditCardID)
	if err != nil {
		return nil, err
	}

	debts, err := uc.debtRepo.FindByCard(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	return &ListDebtsOutput{
		Debts: debts,
	}, nil
}

func findDebt(ctx context.Context, debtRepo adapter.CreditCardDebtRepository, debtID uuid.UUID) (*entity.CreditCardDebt, error) {
	debt, err := debtRepo.FindByID(ctx, debtID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCreditCardDebtNotFound) {
			return nil, domainerror.NewCreditCardError(
				domainerror.ErrCodeCreditCardDebtNotFound,
				"debt not found",
				domainerror.ErrCreditCardDebtNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}
	return debt, nil
}
