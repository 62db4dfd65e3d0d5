package creditcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateCreditCardInput represents the input for credit card creation.
type CreateCreditCardInput struct {
	Name           string
	MaxDebt        valueobject.Money
	ClosingDay     int
	BillingDueDay  int
	LastFourDigits string
}

// CreateCreditCardOutput represents the output of credit card creation.
type CreateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// CreateCreditCardUseCase handles credit card creation logic.
type CreateCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewCreateCreditCardUseCase creates a new CreateCreditCardUseCase instance.
func NewCreateCreditCardUseCase(cardRepo adapter.CreditCardRepository) *CreateCreditCardUseCase {
	return &CreateCreditCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the credit card creation.
func (uc *CreateCreditCardUseCase) Execute(ctx context.Context, input CreateCreditCardInput) (*CreateCreditCardOutput, error) {
	fields, err := validateCardFields(ctx, uc.cardRepo, cardFields(input), uuid.Nil)
	if err != nil {
		return nil, err
	}

	card := entity.NewCreditCard(fields.Name, fields.MaxDebt, fields.ClosingDay, fields.BillingDueDay, fields.LastFourDigits)
	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	slog.Info("Credit card created",
		"credit_card_id", card.ID,
		"name", card.Name,
		"max_debt", card.MaxDebt.String(),
	)

	return &CreateCreditCardOutput{
		CreditCard: card,
	}, nil
}
