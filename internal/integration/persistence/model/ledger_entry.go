package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// LedgerEntryModel represents the ledger_entries table in the database.
// A recurring template produces at most one entry per due date.
type LedgerEntryModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type                string          `gorm:"type:varchar(10);not null;index"`
	Status              string          `gorm:"type:varchar(10);not null;index"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date                time.Time       `gorm:"not null;index;uniqueIndex:idx_entry_template_date,priority:2"`
	Description         string          `gorm:"type:varchar(255)"`
	RecurringTemplateID *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_entry_template_date,priority:1"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:                  m.ID,
		WalletID:            m.WalletID,
		CategoryID:          m.CategoryID,
		Type:                entity.EntryType(m.Type),
		Status:              entity.EntryStatus(m.Status),
		Amount:              valueobject.NewMoney(m.Amount),
		Date:                m.Date,
		Description:         m.Description,
		RecurringTemplateID: m.RecurringTemplateID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:                  entry.ID,
		WalletID:            entry.WalletID,
		CategoryID:          entry.CategoryID,
		Type:                string(entry.Type),
		Status:              string(entry.Status),
		Amount:              entry.Amount.Decimal(),
		Date:                entry.Date,
		Description:         entry.Description,
		RecurringTemplateID: entry.RecurringTemplateID,
		CreatedAt:           entry.CreatedAt,
		UpdatedAt:           entry.UpdatedAt,
	}
}
