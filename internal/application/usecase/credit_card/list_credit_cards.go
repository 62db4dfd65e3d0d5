package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// ListCreditCardsInput represents the input for listing credit cards.
type ListCreditCardsInput struct {
	IncludeArchived bool
}

// ListCreditCardsOutput represents the output of listing credit cards.
type ListCreditCardsOutput struct {
	CreditCards []*entity.CreditCard
}

// ListCreditCardsUseCase lists credit cards ordered by name.
type ListCreditCardsUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewListCreditCardsUseCase creates a new ListCreditCardsUseCase instance.
func NewListCreditCardsUseCase(cardRepo adapter.CreditCardRepository) *ListCreditCardsUseCase {
	return &ListCreditCardsUseCase{
		cardRepo: cardRepo,
	}
}

// Execute lists the credit cards.
func (uc *ListCreditCardsUseCase) Execute(ctx context.Context, input ListCreditCardsInput) (*ListCreditCardsOutput, error) {
	cards, err := uc.cardRepo.FindAll(ctx, input.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}

	return &ListCreditCardsOutput{
		CreditCards: cards,
	}, nil
}

// GetAvailableCreditInput represents the input for the available credit query.
type GetAvailableCreditInput struct {
	CreditCardID uuid.UUID
}

// GetAvailableCreditOutput represents the output of the available credit query.
type GetAvailableCreditOutput struct {
	CreditCard      *entity.CreditCard
	AvailableCredit valueobject.Money
}

// GetAvailableCreditUseCase computes how much of the card limit is still free.
type GetAvailableCreditUseCase struct {
	cardRepo    adapter.CreditCardRepository
	debtRepo    adapter.CreditCardDebtRepository
	paymentRepo adapter.CreditCardPaymentRepository
}

// NewGetAvailableCreditUseCase creates a new GetAvailableCreditUseCase instance.
func NewGetAvailableCreditUseCase(
	cardRepo adapter.CreditCardRepository,
	debtRepo adapter.CreditCardDebtRepository,
	paymentRepo adapter.CreditCardPaymentRepository,
) *GetAvailableCreditUseCase {
	return &GetAvailableCreditUseCase{
		cardRepo:    cardRepo,
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute returns maxDebt - registered debt + paid amount.
func (uc *GetAvailableCreditUseCase) Execute(ctx context.Context, input GetAvailableCreditInput) (*GetAvailableCreditOutput, error) {
	card, err := findCard(ctx, uc.cardRepo, input.CreditCardID)
	if err != nil {
		return nil, err
	}

	available, err := availableCredit(ctx, card, uc.debtRepo, uc.paymentRepo)
	if err != nil {
		return nil, err
	}

	return &GetAvailableCreditOutput{
		CreditCard:      card,
		AvailableCredit: available,
	}, nil
}
