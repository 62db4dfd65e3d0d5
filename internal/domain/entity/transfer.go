package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Transfer moves money between two wallets in a single atomic step.
type Transfer struct {
	ID               uuid.UUID
	SenderWalletID   uuid.UUID
	ReceiverWalletID uuid.UUID
	Amount           valueobject.Money
	Date             time.Time
	Description      string
	CreatedAt        time.Time
}

// NewTransfer creates a new Transfer entity.
func NewTransfer(senderID, receiverID uuid.UUID, amount valueobject.Money, date time.Time, description string) *Transfer {
	return &Transfer{
		ID:               uuid.New(),
		SenderWalletID:   senderID,
		ReceiverWalletID: receiverID,
		Amount:           amount,
		Date:             date,
		Description:      description,
		CreatedAt:        time.Now().UTC(),
	}
}
