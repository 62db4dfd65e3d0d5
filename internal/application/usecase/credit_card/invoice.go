package creditcard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// nextInvoiceDate is the due date of the card's earliest pending payment. Without
// pending payments it is this month's billing due day, or next month's once the
// closing day has passed.
func nextInvoiceDate(
	ctx context.Context,
	card *entity.CreditCard,
	paymentRepo adapter.CreditCardPaymentRepository,
	now time.Time,
) (time.Time, error) {
	due, err := paymentRepo.FindNextPendingDueDate(ctx, card.ID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to find next pending payment: %w", err)
	}
	if due != nil {
		return due.UTC(), nil
	}

	today := valueobject.StartOfDay(now)
	if today.Day() > card.ClosingDay {
		return valueobject.WithDayOfMonth(valueobject.AddMonths(today, 1), card.BillingDueDay), nil
	}
	return valueobject.WithDayOfMonth(today, card.BillingDueDay), nil
}

// invoiceStatus compares the invoice of (month, year) with the next invoice
// date on the same day of month: invoices on or after it are still open.
func invoiceStatus(next time.Time, month time.Month, year int) entity.InvoiceStatus {
	first := time.Date(year, month, 1, 23, 59, 0, 0, time.UTC)
	candidate := valueobject.WithDayOfMonth(first, next.Day())

	if candidate.Before(valueobject.StartOfDay(next)) {
		return entity.InvoiceStatusClosed
	}
	return entity.InvoiceStatusOpen
}

// GetNextInvoiceDateInput represents the input for the next invoice date query.
type GetNextInvoiceDateInput struct {
	CreditCardID uuid.UUID
}

// GetNextInvoiceDateOutput represents the output of the next invoice date query.
type GetNextInvoiceDateOutput struct {
	NextInvoiceDate time.Time
}

// GetNextInvoiceDateUseCase computes the due date of the card's next invoice.
type GetNextInvoiceDateUseCase struct {
	cardRepo    adapter.CreditCardRepository
	paymentRepo adapter.CreditCardPaymentRepository
	clock       adapter.Clock
}

// NewGetNextInvoiceDateUseCase creates a new GetNextInvoiceDateUseCase instance.
func NewGetNextInvoiceDateUseCase(
	cardRepo adapter.CreditCardRepository,
	paymentRepo adapter.CreditCardPaymentRepository,
	clock adapter.Clock,
) *GetNextInvoiceDateUseCase {
	return &GetNextInvoiceDateUseCase{
		cardRepo:    cardRepo,
		paymentRepo: paymentRepo,
		clock:       clock,
	}
}

// Execute returns the next invoice date.
func (uc *GetNextInvoiceDateUseCase) Execute(ctx context.Context, input GetNextInvoiceDateInput) (*GetNextInvoiceDateOutput, error) {
	card, err := findCard(ctx, uc.cardRepo, input.CreditCardID)
	if err != nil {
		return nil, err
	}

	next, err := nextInvoiceDate(ctx, card, uc.paymentRepo, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return &GetNextInvoiceDateOutput{
		NextInvoiceDate: next,
	}, nil
}

// GetInvoiceInput represents the input for a monthly invoice query.
type GetInvoiceInput struct {
	CreditCardID uuid.UUID
	Month        int
	Year         int
}

// GetInvoiceOutput describes a card's invoice for one month.
type GetInvoiceOutput struct {
	CreditCard      *entity.CreditCard
	Month           time.Month
	Year            int
	Status          entity.InvoiceStatus
	NextInvoiceDate time.Time
	Amount          valueobject.Money // every installment due in the month
	PendingAmount   valueobject.Money
	Payments        []*entity.CreditCardPayment
}

// GetInvoiceUseCase reports the status, amount and payments of a monthly invoice.
type GetInvoiceUseCase struct {
	cardRepo    adapter.CreditCardRepository
	paymentRepo adapter.CreditCardPaymentRepository
	clock       adapter.Clock
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance.
func NewGetInvoiceUseCase(
	cardRepo adapter.CreditCardRepository,
	paymentRepo adapter.CreditCardPaymentRepository,
	clock adapter.Clock,
) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		cardRepo:    cardRepo,
		paymentRepo: paymentRepo,
		clock:       clock,
	}
}

// Execute builds the invoice.
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, input GetInvoiceInput) (*GetInvoiceOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}
	month := time.Month(input.Month)

	card, err := findCard(ctx, uc.cardRepo, input.CreditCardID)
	if err != nil {
		return nil, err
	}

	next, err := nextInvoiceDate(ctx, card, uc.paymentRepo, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.FindByCardAndMonth(ctx, card.ID, month, input.Year, false)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice payments: %w", err)
	}

	output := &GetInvoiceOutput{
		CreditCard:      card,
		Month:           month,
		Year:            input.Year,
		Status:          invoiceStatus(next, month, input.Year),
		NextInvoiceDate: next,
		Payments:        payments,
	}
	for _, payment := range payments {
		output.Amount = output.Amount.Add(payment.Amount)
		if !payment.IsPaid() {
			output.PendingAmount = output.PendingAmount.Add(payment.Amount)
		}
	}

	return output, nil
}
