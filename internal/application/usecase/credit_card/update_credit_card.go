package creditcard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// UpdateCreditCardInput represents the input for credit card update.
type UpdateCreditCardInput struct {
	CreditCardID   uuid.UUID
	Name           string
	MaxDebt        valueobject.Money
	ClosingDay     int
	BillingDueDay  int
	LastFourDigits string
}

// SetArchivedInput represents the input for archiving or restoring a card.
type SetArchivedInput struct {
	CreditCardID uuid.UUID
	Archived     bool
}

// UpdateCreditCardOutput represents the output of a credit card update.
type UpdateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// UpdateCreditCardUseCase edits, archives and unarchives credit cards.
type UpdateCreditCardUseCase struct {
	cardRepo    adapter.CreditCardRepository
	paymentRepo adapter.CreditCardPaymentRepository
}

// NewUpdateCreditCardUseCase creates a new UpdateCreditCardUseCase instance.
func NewUpdateCreditCardUseCase(
	cardRepo adapter.CreditCardRepository,
	paymentRepo adapter.CreditCardPaymentRepository,
) *UpdateCreditCardUseCase {
	return &UpdateCreditCardUseCase{
		cardRepo:    cardRepo,
		paymentRepo: paymentRepo,
	}
}

// Execute replaces the editable attributes of the card.
// Existing installments keep their due dates.
func (uc *UpdateCreditCardUseCase) Execute(ctx context.Context, input UpdateCreditCardInput) (*UpdateCreditCardOutput, error) {
	card, err := findCard(ctx, uc.cardRepo, input.CreditCardID)
	if err != nil {
		return nil, err
	}

	fields, err := validateCardFields(ctx, uc.cardRepo, cardFields{
		Name:           input.Name,
		MaxDebt:        input.MaxDebt,
		ClosingDay:     input.ClosingDay,
		BillingDueDay:  input.BillingDueDay,
		LastFourDigits: input.LastFourDigits,
	}, card.ID)
	if err != nil {
		return nil, err
	}

	card.Name = fields.Name
	card.MaxDebt = fields.MaxDebt
	card.ClosingDay = fields.ClosingDay
	card.BillingDueDay = fields.BillingDueDay
	card.LastFourDigits = fields.LastFourDigits

	return uc.save(ctx, card)
}

// SetArchived archives or unarchives the card. A card with pending payments cannot be archived.
func (uc *UpdateCreditCardUseCase) SetArchived(ctx context.Context, input SetArchivedInput) (*UpdateCreditCardOutput, error) {
	card, err := findCard(ctx, uc.cardRepo, input.CreditCardID)
	if err != nil {
		return nil, err
	}

	if input.Archived {
		pending, err := uc.paymentRepo.CountPendingByCard(ctx, card.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending payments: %w", err)
		}
		if pending > 0 {
			return nil, domainerror.NewCreditCardError(
				domainerror.ErrCodeCreditCardHasPendingPayments,
				fmt.Sprintf("credit card has %d pending payments and cannot be archived", pending),
				domainerror.ErrCreditCardHasPendingPayments,
			)
		}
	}

	card.Archived = input.Archived
	return uc.save(ctx, card)
}

func (uc *UpdateCreditCardUseCase) save(ctx context.Context, card *entity.CreditCard) (*UpdateCreditCardOutput, error) {
	card.UpdatedAt = time.Now().UTC()
	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}

	slog.Info("Credit card updated",
		"credit_card_id", card.ID,
		"name", card.Name,
		"archived", card.Archived,
	)

	return &UpdateCreditCardOutput{
		CreditCard: card,
	}, nil
}
