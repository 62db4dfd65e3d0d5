package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// MaxBillingDay is the last day of month a card may close or bill on.
const MaxBillingDay = 28

// InvoiceStatus is the state of a card's monthly invoice.
type InvoiceStatus string

const (
	InvoiceStatusOpen   InvoiceStatus = "open"
	InvoiceStatusClosed InvoiceStatus = "closed"
)

// CreditCard is a bounded credit line paid through monthly invoices.
type CreditCard struct {
	ID             uuid.UUID
	Name           string
	MaxDebt        valueobject.Money
	ClosingDay     int
	BillingDueDay  int
	LastFourDigits string
	Archived       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(name string, maxDebt valueobject.Money, closingDay, billingDueDay int, lastFourDigits string) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:             uuid.New(),
		Name:           name,
		MaxDebt:        maxDebt,
		ClosingDay:     closingDay,
		BillingDueDay:  billingDueDay,
		LastFourDigits: lastFourDigits,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CreditCardDebt is a purchase on a card, split into installment payments.
type CreditCardDebt struct {
	ID               uuid.UUID
	CreditCardID     uuid.UUID
	CategoryID       uuid.UUID
	Date             time.Time
	TotalAmount      valueobject.Money
	InstallmentCount int
	Description      string
	CreatedAt        time.Time
}

// NewCreditCardDebt creates a new CreditCardDebt entity.
func NewCreditCardDebt(
	cardID uuid.UUID,
	categoryID uuid.UUID,
	date time.Time,
	total valueobject.Money,
	installments int,
	description string,
) *CreditCardDebt {
	return &CreditCardDebt{
		ID:               uuid.New(),
		CreditCardID:     cardID,
		CategoryID:       categoryID,
		Date:             date,
		TotalAmount:      total,
		InstallmentCount: installments,
		Description:      description,
		CreatedAt:        time.Now().UTC(),
	}
}

// Installments builds the dated payments of the debt. Installment i (1..N)
// is due i months after the purchase on the card's billing due day.
func (d *CreditCardDebt) Installments(billingDueDay int) []*CreditCardPayment {
	amounts := d.TotalAmount.Split(d.InstallmentCount)
	payments := make([]*CreditCardPayment, len(amounts))
	for i, amount := range amounts {
		index := i + 1
		dueDate := valueobject.WithDayOfMonth(valueobject.AddMonths(d.Date, index), billingDueDay)
		payments[i] = NewCreditCardPayment(d.ID, dueDate, amount, index)
	}
	return payments
}

// CreditCardPayment is one installment of a debt. It is pending until a
// settling wallet is assigned.
type CreditCardPayment struct {
	ID               uuid.UUID
	DebtID           uuid.UUID
	DueDate          time.Time
	Amount           valueobject.Money
	InstallmentIndex int
	SettlingWalletID *uuid.UUID
	SettledAt        *time.Time
	CreatedAt        time.Time
}

// NewCreditCardPayment creates a new pending CreditCardPayment entity.
func NewCreditCardPayment(debtID uuid.UUID, dueDate time.Time, amount valueobject.Money, index int) *CreditCardPayment {
	return &CreditCardPayment{
		ID:               uuid.New(),
		DebtID:           debtID,
		DueDate:          dueDate,
		Amount:           amount,
		InstallmentIndex: index,
		CreatedAt:        time.Now().UTC(),
	}
}

// IsPaid reports whether the payment has been settled from a wallet.
func (p *CreditCardPayment) IsPaid() bool {
	return p.SettlingWalletID != nil
}

// Settle marks the payment as paid from the given wallet.
func (p *CreditCardPayment) Settle(walletID uuid.UUID, at time.Time) {
	p.SettlingWalletID = &walletID
	p.SettledAt = &at
}
