package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	MaxDebt        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ClosingDay     int             `gorm:"not null"`
	BillingDueDay  int             `gorm:"not null"`
	LastFourDigits string          `gorm:"type:varchar(4)"`
	Archived       bool            `gorm:"not null;default:false"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:             m.ID,
		Name:           m.Name,
		MaxDebt:        valueobject.NewMoney(m.MaxDebt),
		ClosingDay:     m.ClosingDay,
		BillingDueDay:  m.BillingDueDay,
		LastFourDigits: m.LastFourDigits,
		Archived:       m.Archived,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CreditCardFromEntity creates a CreditCardModel from a domain CreditCard entity.
func CreditCardFromEntity(card *entity.CreditCard) *CreditCardModel {
	return &CreditCardModel{
		ID:             card.ID,
		Name:           card.Name,
		MaxDebt:        card.MaxDebt.Decimal(),
		ClosingDay:     card.ClosingDay,
		BillingDueDay:  card.BillingDueDay,
		LastFourDigits: card.LastFourDigits,
		Archived:       card.Archived,
		CreatedAt:      card.CreatedAt,
		UpdatedAt:      card.UpdatedAt,
	}
}

// CreditCardDebtModel represents the credit_card_debts table in the database.
type CreditCardDebtModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreditCardID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date             time.Time       `gorm:"not null"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InstallmentCount int             `gorm:"not null"`
	Description      string          `gorm:"type:varchar(255)"`
	CreatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CreditCardDebtModel.
func (CreditCardDebtModel) TableName() string {
	return "credit_card_debts"
}

// ToEntity converts a CreditCardDebtModel to a domain CreditCardDebt entity.
func (m *CreditCardDebtModel) ToEntity() *entity.CreditCardDebt {
	return &entity.CreditCardDebt{
		ID:               m.ID,
		CreditCardID:     m.CreditCardID,
		CategoryID:       m.CategoryID,
		Date:             m.Date,
		TotalAmount:      valueobject.NewMoney(m.TotalAmount),
		InstallmentCount: m.InstallmentCount,
		Description:      m.Description,
		CreatedAt:        m.CreatedAt,
	}
}

// CreditCardDebtFromEntity creates a CreditCardDebtModel from a domain CreditCardDebt entity.
func CreditCardDebtFromEntity(debt *entity.CreditCardDebt) *CreditCardDebtModel {
	return &CreditCardDebtModel{
		ID:               debt.ID,
		CreditCardID:     debt.CreditCardID,
		CategoryID:       debt.CategoryID,
		Date:             debt.Date,
		TotalAmount:      debt.TotalAmount.Decimal(),
		InstallmentCount: debt.InstallmentCount,
		Description:      debt.Description,
		CreatedAt:        debt.CreatedAt,
	}
}

// CreditCardPaymentModel represents the credit_card_payments table in the database.
type CreditCardPaymentModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DebtID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	DueDate          time.Time       `gorm:"not null;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InstallmentIndex int             `gorm:"not null"`
	SettlingWalletID *uuid.UUID      `gorm:"type:uuid;index"`
	SettledAt        *time.Time      `gorm:"default:null"`
	CreatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CreditCardPaymentModel.
func (CreditCardPaymentModel) TableName() string {
	return "credit_card_payments"
}

// ToEntity converts a CreditCardPaymentModel to a domain CreditCardPayment entity.
func (m *CreditCardPaymentModel) ToEntity() *entity.CreditCardPayment {
	return &entity.CreditCardPayment{
		ID:               m.ID,
		DebtID:           m.DebtID,
		DueDate:          m.DueDate,
		Amount:           valueobject.NewMoney(m.Amount),
		InstallmentIndex: m.InstallmentIndex,
		SettlingWalletID: m.SettlingWalletID,
		SettledAt:        m.SettledAt,
		CreatedAt:        m.CreatedAt,
	}
}

// CreditCardPaymentFromEntity creates a CreditCardPaymentModel from a domain CreditCardPayment entity.
func CreditCardPaymentFromEntity(payment *entity.CreditCardPayment) *CreditCardPaymentModel {
	return &CreditCardPaymentModel{
		ID:               payment.ID,
		DebtID:           payment.DebtID,
		DueDate:          payment.DueDate,
		Amount:           payment.Amount.Decimal(),
		InstallmentIndex: payment.InstallmentIndex,
		SettlingWalletID: payment.SettlingWalletID,
		SettledAt:        payment.SettledAt,
		CreatedAt:        payment.CreatedAt,
	}
}
