package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name           string            `json:"name" binding:"required"`
	InitialBalance valueobject.Money `json:"initial_balance"`
}

// RenameWalletRequest represents the request body for renaming a wallet.
type RenameWalletRequest struct {
	Name string `json:"name" binding:"required"`
}

// WalletResponse represents a single wallet in API responses.
type WalletResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Balance   valueobject.Money `json:"balance"`
	Archived  bool              `json:"archived"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// WalletListResponse represents the response for listing wallets.
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// ToWalletResponse converts a domain Wallet entity to a WalletResponse DTO.
func ToWalletResponse(wallet *entity.Wallet) WalletResponse {
	return WalletResponse{
		ID:        wallet.ID.String(),
		Name:      wallet.Name,
		Balance:   wallet.Balance,
		Archived:  wallet.Archived,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}
}

// ToWalletListResponse converts a list of wallets to a WalletListResponse DTO.
func ToWalletListResponse(wallets []*entity.Wallet) WalletListResponse {
	responses := make([]WalletResponse, len(wallets))
	for i, wallet := range wallets {
		responses[i] = ToWalletResponse(wallet)
	}
	return WalletListResponse{Wallets: responses}
}
