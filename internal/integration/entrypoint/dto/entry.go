package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateEntryRequest represents the request body for adding a ledger entry.
type CreateEntryRequest struct {
	WalletID    string            `json:"wallet_id" binding:"required,uuid"`
	CategoryID  string            `json:"category_id" binding:"required,uuid"`
	Type        string            `json:"type" binding:"required,oneof=expense income"`
	Status      string            `json:"status" binding:"required,oneof=pending confirmed"`
	Amount      valueobject.Money `json:"amount"`
	Date        string            `json:"date" binding:"required"` // Format: YYYY-MM-DD
	Description string            `json:"description"`
}

// UpdateEntryRequest represents the request body for updating a ledger entry.
// Omitted fields keep their current value.
type UpdateEntryRequest struct {
	WalletID    *string            `json:"wallet_id,omitempty" binding:"omitempty,uuid"`
	CategoryID  *string            `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Type        *string            `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Status      *string            `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed"`
	Amount      *valueobject.Money `json:"amount,omitempty"`
	Date        *string            `json:"date,omitempty"`
	Description *string            `json:"description,omitempty"`
}

// ListEntriesQuery represents the query parameters for listing entries.
type ListEntriesQuery struct {
	WalletID   string `form:"wallet_id" binding:"omitempty,uuid"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	Type       string `form:"type" binding:"omitempty,oneof=expense income"`
	Status     string `form:"status" binding:"omitempty,oneof=pending confirmed"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID                  string            `json:"id"`
	WalletID            string            `json:"wallet_id"`
	CategoryID          string            `json:"category_id"`
	Type                string            `json:"type"`
	Status              string            `json:"status"`
	Amount              valueobject.Money `json:"amount"`
	Date                string            `json:"date"`
	Description         string            `json:"description"`
	RecurringTemplateID *string           `json:"recurring_template_id,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// EntryListResponse represents the response for listing entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain LedgerEntry entity to an EntryResponse DTO.
func ToEntryResponse(entry *entity.LedgerEntry) EntryResponse {
	response := EntryResponse{
		ID:          entry.ID.String(),
		WalletID:    entry.WalletID.String(),
		CategoryID:  entry.CategoryID.String(),
		Type:        string(entry.Type),
		Status:      string(entry.Status),
		Amount:      entry.Amount,
		Date:        FormatDate(entry.Date),
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
	if entry.RecurringTemplateID != nil {
		templateID := entry.RecurringTemplateID.String()
		response.RecurringTemplateID = &templateID
	}
	return response
}

// ToEntryListResponse converts a list of entries to an EntryListResponse DTO.
func ToEntryListResponse(entries []*entity.LedgerEntry) EntryListResponse {
	responses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToEntryResponse(entry)
	}
	return EntryListResponse{Entries: responses}
}

// TransferRequest represents the request body for moving money between wallets.
type TransferRequest struct {
	SenderWalletID   string            `json:"sender_wallet_id" binding:"required,uuid"`
	ReceiverWalletID string            `json:"receiver_wallet_id" binding:"required,uuid"`
	Amount           valueobject.Money `json:"amount"`
	Date             string            `json:"date" binding:"required"`
	Description      string            `json:"description"`
}

// TransferResponse represents a single transfer in API responses.
type TransferResponse struct {
	ID               string            `json:"id"`
	SenderWalletID   string            `json:"sender_wallet_id"`
	ReceiverWalletID string            `json:"receiver_wallet_id"`
	Amount           valueobject.Money `json:"amount"`
	Date             string            `json:"date"`
	Description      string            `json:"description"`
	CreatedAt        time.Time         `json:"created_at"`
}

// TransferListResponse represents the response for listing transfers.
type TransferListResponse struct {
	Transfers []TransferResponse `json:"transfers"`
}

// ToTransferResponse converts a domain Transfer entity to a TransferResponse DTO.
func ToTransferResponse(transfer *entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:               transfer.ID.String(),
		SenderWalletID:   transfer.SenderWalletID.String(),
		ReceiverWalletID: transfer.ReceiverWalletID.String(),
		Amount:           transfer.Amount,
		Date:             FormatDate(transfer.Date),
		Description:      transfer.Description,
		CreatedAt:        transfer.CreatedAt,
	}
}

// ToTransferListResponse converts a list of transfers to a TransferListResponse DTO.
func ToTransferListResponse(transfers []*entity.Transfer) TransferListResponse {
	responses := make([]TransferResponse, len(transfers))
	for i, transfer := range transfers {
		responses[i] = ToTransferResponse(transfer)
	}
	return TransferListResponse{Transfers: responses}
}
