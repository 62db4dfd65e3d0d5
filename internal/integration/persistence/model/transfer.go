package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransferModel represents the transfers table in the database.
type TransferModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SenderWalletID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceiverWalletID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date             time.Time       `gorm:"not null;index"`
	Description      string          `gorm:"type:varchar(255)"`
	CreatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransferModel.
func (TransferModel) TableName() string {
	return "transfers"
}

// ToEntity converts a TransferModel to a domain Transfer entity.
func (m *TransferModel) ToEntity() *entity.Transfer {
	return &entity.Transfer{
		ID:               m.ID,
		SenderWalletID:   m.SenderWalletID,
		ReceiverWalletID: m.ReceiverWalletID,
		Amount:           valueobject.NewMoney(m.Amount),
		Date:             m.Date,
		Description:      m.Description,
		CreatedAt:        m.CreatedAt,
	}
}

// TransferFromEntity creates a TransferModel from a domain Transfer entity.
func TransferFromEntity(transfer *entity.Transfer) *TransferModel {
	return &TransferModel{
		ID:               transfer.ID,
		SenderWalletID:   transfer.SenderWalletID,
		ReceiverWalletID: transfer.ReceiverWalletID,
		Amount:           transfer.Amount.Decimal(),
		Date:             transfer.Date,
		Description:      transfer.Description,
		CreatedAt:        transfer.CreatedAt,
	}
}
