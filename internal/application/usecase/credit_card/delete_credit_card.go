package creditcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteCreditCardInput represents the input for credit card deletion.
type DeleteCreditCardInput struct {
	CreditCardID uuid.UUID
}

// DeleteCreditCardUseCase removes cards without registered debts.
type DeleteCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
	debtRepo adapter.CreditCardDebtRepository
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(
	cardRepo adapter.CreditCardRepository,
	debtRepo adapter.CreditCardDebtRepository,
) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{
		cardRepo: cardRepo,
		debtRepo: debtRepo,
	}
}

// Execute deletes the card.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, input DeleteCreditCardInput) error {
	card, err := findCard(ctx, uc.cardRepo, input.CreditCardID)
	if err != nil {
		return err
	}

	debts, err := uc.debtRepo.CountByCard(ctx, card.ID)
	if err != nil {
		return fmt.Errorf("failed to count card debts: %w", err)
	}
	if debts > 0 {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardHasDebts,
			fmt.Sprintf("credit card has %d debts and cannot be deleted", debts),
			domainerror.ErrCreditCardHasDebts,
		)
	}

	if err := uc.cardRepo.Delete(ctx, card.ID); err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}

	slog.Info("Credit card deleted", "credit_card_id", card.ID)

	return nil
}
