package dto

import (
	"time"

	creditcard "github.com/finance-tracker/ledger/internal/application/usecase/credit_card"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreditCardRequest represents the request body for creating or updating a credit card.
type CreditCardRequest struct {
	Name           string            `json:"name" binding:"required"`
	MaxDebt        valueobject.Money `json:"max_debt"`
	ClosingDay     int               `json:"closing_day"`
	BillingDueDay  int               `json:"billing_due_day"`
	LastFourDigits string            `json:"last_four_digits" binding:"required"`
}

// CreditCardResponse represents a single credit card in API responses.
type CreditCardResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	MaxDebt        valueobject.Money `json:"max_debt"`
	ClosingDay     int               `json:"closing_day"`
	BillingDueDay  int               `json:"billing_due_day"`
	LastFourDigits string            `json:"last_four_digits"`
	Archived       bool              `json:"archived"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreditCardListResponse represents the response for listing credit cards.
type CreditCardListResponse struct {
	CreditCards []CreditCardResponse `json:"credit_cards"`
}

// AvailableCreditResponse represents the remaining credit of a card.
type AvailableCreditResponse struct {
	CreditCardID    string            `json:"credit_card_id"`
	MaxDebt         valueobject.Money `json:"max_debt"`
	AvailableCredit valueobject.Money `json:"available_credit"`
}

// RegisterDebtRequest represents the request body for registering a purchase.
type RegisterDebtRequest struct {
	CategoryID       string            `json:"category_id" binding:"required,uuid"`
	Date             string            `json:"date" binding:"required"`
	TotalAmount      valueobject.Money `json:"total_amount"`
	InstallmentCount int               `json:"installment_count"`
	Description      string            `json:"description"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID               string            `json:"id"`
	CreditCardID     string            `json:"credit_card_id"`
	CategoryID       string            `json:"category_id"`
	Date             string            `json:"date"`
	TotalAmount      valueobject.Money `json:"total_amount"`
	InstallmentCount int               `json:"installment_count"`
	Description      string            `json:"description"`
	Payments         []PaymentResponse `json:"payments,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// PaymentResponse represents a single installment in API responses.
type PaymentResponse struct {
	ID               string            `json:"id"`
	DebtID           string            `json:"debt_id"`
	InstallmentIndex int               `json:"installment_index"`
	DueDate          string            `json:"due_date"`
	Amount           valueobject.Money `json:"amount"`
	Paid             bool              `json:"paid"`
	SettlingWalletID *string           `json:"settling_wallet_id,omitempty"`
	SettledAt        *time.Time        `json:"settled_at,omitempty"`
}

// InvoiceQuery represents the query parameters selecting an invoice month.
type InvoiceQuery struct {
	Month int `form:"month"`
	Year  int `form:"year"`
}

// InvoiceResponse represents the invoice of a card for one month.
type InvoiceResponse struct {
	CreditCardID    string            `json:"credit_card_id"`
	Month           int               `json:"month"`
	Year            int               `json:"year"`
	Status          string            `json:"status"`
	NextInvoiceDate string            `json:"next_invoice_date"`
	Amount          valueobject.Money `json:"amount"`
	PendingAmount   valueobject.Money `json:"pending_amount"`
	Payments        []PaymentResponse `json:"payments"`
}

// PayInvoiceRequest represents the request body for paying a monthly invoice.
type PayInvoiceRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

// SettlePaymentRequest represents the request body for settling one installment.
type SettlePaymentRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
}

// SettlementResponse represents a settled installment and the expense recorded for it.
type SettlementResponse struct {
	Payment PaymentResponse `json:"payment"`
	Entry   *EntryResponse  `json:"entry,omitempty"`
}

// PayInvoiceResponse represents the result of paying an invoice.
type PayInvoiceResponse struct {
	Settled []SettlementResponse `json:"settled"`
}

// ToCreditCardResponse converts a domain CreditCard entity to a CreditCardResponse DTO.
func ToCreditCardResponse(card *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:             card.ID.String(),
		Name:           card.Name,
		MaxDebt:        card.MaxDebt,
		ClosingDay:     card.ClosingDay,
		BillingDueDay:  card.BillingDueDay,
		LastFourDigits: card.LastFourDigits,
		Archived:       card.Archived,
		CreatedAt:      card.CreatedAt,
		UpdatedAt:      card.UpdatedAt,
	}
}

// ToCreditCardListResponse converts a list of cards to a CreditCardListResponse DTO.
func ToCreditCardListResponse(cards []*entity.CreditCard) CreditCardListResponse {
	responses := make([]CreditCardResponse, len(cards))
	for i, card := range cards {
		responses[i] = ToCreditCardResponse(card)
	}
	return CreditCardListResponse{CreditCards: responses}
}

// ToDebtResponse converts a debt and, optionally, its installments to a DebtResponse DTO.
func ToDebtResponse(debt *entity.CreditCardDebt, payments []*entity.CreditCardPayment) DebtResponse {
	response := DebtResponse{
		ID:               debt.ID.String(),
		CreditCardID:     debt.CreditCardID.String(),
		CategoryID:       debt.CategoryID.String(),
		Date:             FormatDate(debt.Date),
		TotalAmount:      debt.TotalAmount,
		InstallmentCount: debt.InstallmentCount,
		Description:      debt.Description,
		CreatedAt:        debt.CreatedAt,
	}
	if len(payments) > 0 {
		response.Payments = ToPaymentResponses(payments)
	}
	return response
}

// ToDebtListResponse converts a list of debts to a DebtListResponse DTO.
func ToDebtListResponse(debts []*entity.CreditCardDebt) DebtListResponse {
	responses := make([]DebtResponse, len(debts))
	for i, debt := range debts {
		responses[i] = ToDebtResponse(debt, nil)
	}
	return DebtListResponse{Debts: responses}
}

// ToPaymentResponse converts a domain CreditCardPayment entity to a PaymentResponse DTO.
func ToPaymentResponse(payment *entity.CreditCardPayment) PaymentResponse {
	response := PaymentResponse{
		ID:               payment.ID.String(),
		DebtID:           payment.DebtID.String(),
		InstallmentIndex: payment.InstallmentIndex,
		DueDate:          FormatDate(payment.DueDate),
		Amount:           payment.Amount,
		Paid:             payment.IsPaid(),
		SettledAt:        payment.SettledAt,
	}
	if payment.SettlingWalletID != nil {
		walletID := payment.SettlingWalletID.String()
		response.SettlingWalletID = &walletID
	}
	return response
}

// ToPaymentResponses converts a list of payments to PaymentResponse DTOs.
func ToPaymentResponses(payments []*entity.CreditCardPayment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = ToPaymentResponse(payment)
	}
	return responses
}

// ToInvoiceResponse converts the invoice use case output to an InvoiceResponse DTO.
func ToInvoiceResponse(output *creditcard.GetInvoiceOutput) InvoiceResponse {
	return InvoiceResponse{
		CreditCardID:    output.CreditCard.ID.String(),
		Month:           int(output.Month),
		Year:            output.Year,
		Status:          string(output.Status),
		NextInvoiceDate: FormatDate(output.NextInvoiceDate),
		Amount:          output.Amount,
		PendingAmount:   output.PendingAmount,
		Payments:        ToPaymentResponses(output.Payments),
	}
}

// ToSettlementResponse converts a settled payment to a SettlementResponse DTO.
func ToSettlementResponse(output *creditcard.SettlePaymentOutput) SettlementResponse {
	response := SettlementResponse{
		Payment: ToPaymentResponse(output.Payment),
	}
	if output.Entry != nil {
		entry := ToEntryResponse(output.Entry)
		response.Entry = &entry
	}
	return response
}

// ToPayInvoiceResponse converts the pay invoice use case output to a PayInvoiceResponse DTO.
func ToPayInvoiceResponse(output *creditcard.PayInvoiceOutput) PayInvoiceResponse {
	settled := make([]SettlementResponse, len(output.Settled))
	for i, settlement := range output.Settled {
		settled[i] = ToSettlementResponse(settlement)
	}
	return PayInvoiceResponse{Settled: settled}
}
