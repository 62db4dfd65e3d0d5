// Package creditcard contains the credit card engine: cards, debts split into
// installment payments, the available credit line and monthly invoices.
package creditcard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// MaxCreditCardNameLength is the maximum allowed length for card names.
const MaxCreditCardNameLength = 50

// DefaultMaxInstallments is the installment ceiling used when none is configured.
const DefaultMaxInstallments = 999

// cardFields are the user-editable attributes shared by creation and update.
type cardFields struct {
	Name           string
	MaxDebt        valueobject.Money
	ClosingDay     int
	BillingDueDay  int
	LastFourDigits string
}

// validateCardFields trims the name and checks every field. excludeID is the
// card being updated, uuid.Nil on creation.
func validateCardFields(ctx context.Context, cardRepo adapter.CreditCardRepository, fields cardFields, excludeID uuid.UUID) (cardFields, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	if fields.Name == "" {
		return fields, domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNameRequired,
			"credit card name is required",
			domainerror.ErrCreditCardNameRequired,
		)
	}

	if len(fields.Name) > MaxCreditCardNameLength {
		return fields, domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNameTooLong,
			fmt.Sprintf("credit card name must not exceed %d characters", MaxCreditCardNameLength),
			domainerror.ErrCreditCardNameTooLong,
		)
	}

	if fields.ClosingDay < 1 || fields.ClosingDay > entity.MaxBillingDay {
		return fields, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidClosingDay,
			fmt.Sprintf("closing day must be in the range [1, %d]", entity.MaxBillingDay),
			domainerror.ErrInvalidClosingDay,
		)
	}

	if fields.BillingDueDay < 1 || fields.BillingDueDay > entity.MaxBillingDay {
		return fields, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidBillingDueDay,
			fmt.Sprintf("billing due day must be in the range [1, %d]", entity.MaxBillingDay),
			domainerror.ErrInvalidBillingDueDay,
		)
	}

	if fields.MaxDebt.IsNegative() {
		return fields, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidMaxDebt,
			"max debt must not be negative",
			domainerror.ErrInvalidMaxDebt,
		)
	}

	if !isFourDigits(fields.LastFourDigits) {
		return fields, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidLastFourDigits,
			"last four digits must be exactly 4 digits",
			domainerror.ErrInvalidLastFourDigits,
		)
	}

	exists, err := cardRepo.ExistsByName(ctx, fields.Name, excludeID)
	if err != nil {
		return fields, fmt.Errorf("failed to check credit card name: %w", err)
	}
	if exists {
		return fields, domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardNameExists,
			"a credit card with this name already exists",
			domainerror.ErrCreditCardNameExists,
		)
	}

	return fields, nil
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// findCard loads a card, converting a missing row into a coded error.
func findCard(ctx context.Context, cardRepo adapter.CreditCardRepository, cardID uuid.UUID) (*entity.CreditCard, error) {
	card, err := cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCreditCardNotFound) {
			return nil, domainerror.NewCreditCardError(
				domainerror.ErrCodeCreditCardNotFound,
				"credit card not found",
				domainerror.ErrCreditCardNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find credit card: %w", err)
	}
	return card, nil
}

// availableCredit is the card limit minus the outstanding debt. Settled
// payments no longer consume the credit line.
func availableCredit(
	ctx context.Context,
	card *entity.CreditCard,
	debtRepo adapter.CreditCardDebtRepository,
	paymentRepo adapter.CreditCardPaymentRepository,
) (valueobject.Money, error) {
	registered, err := debtRepo.SumTotalByCard(ctx, card.ID)
	if err != nil {
		return valueobject.Zero, fmt.Errorf("failed to sum card debts: %w", err)
	}

	paid, err := paymentRepo.SumPaidByCard(ctx, card.ID)
	if err != nil {
		return valueobject.Zero, fmt.Errorf("failed to sum card payments: %w", err)
	}

	return card.MaxDebt.Sub(registered).Add(paid), nil
}

// validatePeriod checks an invoice month and year.
func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 1 {
		return domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidInvoicePeriod,
			"invoice month must be in the range [1, 12] and year must be positive",
			domainerror.ErrInvalidInvoicePeriod,
		)
	}
	return nil
}
