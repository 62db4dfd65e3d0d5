package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// RecurringTemplateModel represents the recurring_templates table in the database.
type RecurringTemplateModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null"`
	Type        string          `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate   time.Time       `gorm:"not null"`
	EndDate     time.Time       `gorm:"not null"`
	NextDueDate time.Time       `gorm:"not null;index"`
	Frequency   string          `gorm:"type:varchar(10);not null"`
	Status      string          `gorm:"type:varchar(10);not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringTemplateModel.
func (RecurringTemplateModel) TableName() string {
	return "recurring_templates"
}

// ToEntity converts a RecurringTemplateModel to a domain RecurringTemplate entity.
func (m *RecurringTemplateModel) ToEntity() *entity.RecurringTemplate {
	return &entity.RecurringTemplate{
		ID:          m.ID,
		WalletID:    m.WalletID,
		CategoryID:  m.CategoryID,
		Type:        entity.EntryType(m.Type),
		Amount:      valueobject.NewMoney(m.Amount),
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		NextDueDate: m.NextDueDate,
		Frequency:   valueobject.Frequency(m.Frequency),
		Status:      entity.RecurringStatus(m.Status),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RecurringTemplateFromEntity creates a RecurringTemplateModel from a domain RecurringTemplate entity.
func RecurringTemplateFromEntity(template *entity.RecurringTemplate) *RecurringTemplateModel {
	return &RecurringTemplateModel{
		ID:          template.ID,
		WalletID:    template.WalletID,
		CategoryID:  template.CategoryID,
		Type:        string(template.Type),
		Amount:      template.Amount.Decimal(),
		StartDate:   template.StartDate,
		EndDate:     template.EndDate,
		NextDueDate: template.NextDueDate,
		Frequency:   string(template.Frequency),
		Status:      string(template.Status),
		Description: template.Description,
		CreatedAt:   template.CreatedAt,
		UpdatedAt:   template.UpdatedAt,
	}
}

// AllModels lists every model migrated at startup.
func AllModels() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&WalletModel{},
		&LedgerEntryModel{},
		&TransferModel{},
		&CreditCardModel{},
		&CreditCardDebtModel{},
		&CreditCardPaymentModel{},
		&RecurringTemplateModel{},
	}
}
