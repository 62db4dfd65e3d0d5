package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	creditcard "github.com/finance-tracker/ledger/internal/application/usecase/credit_card"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// CreditCardController handles credit card, debt and invoice endpoints.
type CreditCardController struct {
	createUseCase          *creditcard.CreateCreditCardUseCase
	listUseCase            *creditcard.ListCreditCardsUseCase
	updateUseCase          *creditcard.UpdateCreditCardUseCase
	deleteUseCase          *creditcard.DeleteCreditCardUseCase
	availableCreditUseCase *creditcard.GetAvailableCreditUseCase
	nextInvoiceDateUseCase *creditcard.GetNextInvoiceDateUseCase
	invoiceUseCase         *creditcard.GetInvoiceUseCase
	payInvoiceUseCase      *creditcard.PayInvoiceUseCase
	registerDebtUseCase    *creditcard.RegisterDebtUseCase
	listDebtsUseCase       *creditcard.ListDebtsUseCase
	deleteDebtUseCase      *creditcard.DeleteDebtUseCase
	settlePaymentUseCase   *creditcard.SettlePaymentUseCase
}

// CreditCardUseCases groups the use cases served by the credit card controller.
type CreditCardUseCases struct {
	Create          *creditcard.CreateCreditCardUseCase
	List            *creditcard.ListCreditCardsUseCase
	Update          *creditcard.UpdateCreditCardUseCase
	Delete          *creditcard.DeleteCreditCardUseCase
	AvailableCredit *creditcard.GetAvailableCreditUseCase
	NextInvoiceDate *creditcard.GetNextInvoiceDateUseCase
	Invoice         *creditcard.GetInvoiceUseCase
	PayInvoice      *creditcard.PayInvoiceUseCase
	RegisterDebt    *creditcard.RegisterDebtUseCase
	ListDebts       *creditcard.ListDebtsUseCase
	DeleteDebt      *creditcard.DeleteDebtUseCase
	SettlePayment   *creditcard.SettlePaymentUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(useCases CreditCardUseCases) *CreditCardController {
	return &CreditCardController{
		createUseCase:          useCases.Create,
		listUseCase:            useCases.List,
		updateUseCase:          useCases.Update,
		deleteUseCase:          useCases.Delete,
		availableCreditUseCase: useCases.AvailableCredit,
		nextInvoiceDateUseCase: useCases.NextInvoiceDate,
		invoiceUseCase:         useCases.Invoice,
		payInvoiceUseCase:      useCases.PayInvoice,
		registerDebtUseCase:    useCases.RegisterDebt,
		listDebtsUseCase:       useCases.ListDebts,
		deleteDebtUseCase:      useCases.DeleteDebt,
		settlePaymentUseCase:   useCases.SettlePayment,
	}
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	input := creditcard.ListCreditCardsInput{
		IncludeArchived: ctx.Query("include_archived") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardListResponse(output.CreditCards))
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	var req dto.CreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingCreditCardFields), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), creditcard.CreateCreditCardInput{
		Name:           req.Name,
		MaxDebt:        req.MaxDebt,
		ClosingDay:     req.ClosingDay,
		BillingDueDay:  req.BillingDueDay,
		LastFourDigits: req.LastFourDigits,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.CreditCard))
}

// Update handles PATCH /credit-cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	cardID, ok := parseID(ctx, "id", "credit card")
	if !ok {
		return
	}

	var req dto.CreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingCreditCardFields), err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), creditcard.UpdateCreditCardInput{
		CreditCardID:   cardID,
		Name:           req.Name,
		MaxDebt:        req.MaxDebt,
		ClosingDay:     req.ClosingDay,
		BillingDueDay:  req.BillingDueDay,
		LastFourDigits: req.LastFourDigits,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.CreditCard))
}

// Archive handles POST /credit-cards/:id/archive requests.
func (c *CreditCardController) Archive(ctx *gin.Context) {
	c.setArchived(ctx, true)
}

// Unarchive handles POST /credit-cards/:id/unarchive requests.
func (c *CreditCardController) Unarchive(ctx *gin.Context) {
	c.setArchived(ctx, false)
}

func (c *CreditCardController) setArchived(ctx *gin.Context, archived bool) {
	cardID, ok := parseID(ctx, "id", "credit card")
	if !ok {
		return
	}

	output, err := c.updateUseCase.SetArchived(ctx.Request.Context(), creditcard.SetArchivedInput{
		CreditCardID: cardID,
		Archived:     archived,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.CreditCard))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	cardID, ok := parseID(ctx, "id", "credit card")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), creditcard.DeleteCreditCardInput{CreditCardID: cardID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AvailableCredit handles GET /credit-cards/:id/available-credit requests.
func (c *CreditCardController) AvailableCredit(ctx *gin.Context) {
	cardID, ok := parseID(ctx, "id", "credit card")
	if !ok {
		return
	}

	output, err := c.availableCreditUseCase.Execute(ctx.Request.Context(), creditcard.GetAvailableCreditInput{CreditCardID: cardID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AvailableCreditResponse{
		CreditCardID:    output.CreditCard.ID.String(),
		MaxDebt:         output.CreditCard.MaxDebt,
		AvailableCredit: output.AvailableCredit,
	})
}

// NextInvoiceDate handles GET /credit-cards/:id/next-invoice-date requests.
func (c *CreditCardController) NextInvoiceDate(ctx *gin.Context) {
	cardID, ok := parseID(ctx, "id", "credit card")
	if !ok {
		return
	}

	output, err := c.nextInvoiceDateUseCase.Execute(ctx.Request.Context(), creditcard.GetNextInvoiceDateInput{CreditCardID: cardID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"next_invoice_date": dto.FormatDate(output.NextInvoiceDate)})
}

// Invoice handles GET /credit-cards/:id/invoice requests.
func (c *CreditCardController) Invoice(ctx *gin.Context) {
	cardID, ok := parseID(ctx, "id", "credit card")
	if !ok {
		return
	}

	var query dto.InvoiceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeInvalidInvoicePeriod), err)
		return
	}

	output, err := c.invoiceUseCase.Execute(ctx.Request.Context(), creditcard.GetInvoiceInput{
		CreditCardID: cardID,
		Month:        query.Month,
		Year:         query.Year,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output))
}

// PayInvoice handles POST /credit-cards/:id/invoice/pay requests.
func (c *CreditCardController) PayInvoice(ctx *gin.Context) {
	cardID, ok := parseID(ctx, "id", "credit card")
	if !ok {
		return
	}

	var req dto.PayInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingCreditCardFields), err)
		return
	}

	output, err := c.payInvoiceUseCase.Execute(ctx.Request.Context(), creditcard.PayInvoiceInput{
		CreditCardID: cardID,
		WalletID:     uuid.MustParse(req.WalletID),
		Month:        req.Month,
		Year:         req.Year,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayInvoiceResponse(output))
}

// RegisterDebt handles POST /credit-cards/:id/debts requests.
func (c *CreditCardController) RegisterDebt(ctx *gin.Context) {
	cardID, ok := parseID(ctx, "id", "credit card")
	if !ok {
		return
	}

	var req dto.RegisterDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingCreditCardFields), err)
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingCreditCardFields), err)
		return
	}

	output, err := c.registerDebtUseCase.Execute(ctx.Request.Context(), creditcard.RegisterDebtInput{
		CreditCardID:     cardID,
		CategoryID:       uuid.MustParse(req.CategoryID),
		Date:             date,
		TotalAmount:      req.TotalAmount,
		InstallmentCount: req.InstallmentCount,
		Description:      req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt, output.Payments))
}

// ListDebts handles GET /credit-cards/:id/debts requests.
func (c *CreditCardController) ListDebts(ctx *gin.Context) {
	cardID, ok := parseID(ctx, "id", "credit card")
	if !ok {
		return
	}

	output, err := c.listDebtsUseCase.Execute(ctx.Request.Context(), creditcard.ListDebtsInput{CreditCardID: cardID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// DeleteDebt handles DELETE /debts/:id requests.
func (c *CreditCardController) DeleteDebt(ctx *gin.Context) {
	debtID, ok := parseID(ctx, "id", "debt")
	if !ok {
		return
	}

	if err := c.deleteDebtUseCase.Execute(ctx.Request.Context(), creditcard.DeleteDebtInput{DebtID: debtID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SettlePayment handles POST /payments/:id/settle requests.
func (c *CreditCardController) SettlePayment(ctx *gin.Context) {
	paymentID, ok := parseID(ctx, "id", "payment")
	if !ok {
		return
	}

	var req dto.SettlePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingCreditCardFields), err)
		return
	}

	output, err := c.settlePaymentUseCase.Execute(ctx.Request.Context(), creditcard.SettlePaymentInput{
		PaymentID: paymentID,
		WalletID:  uuid.MustParse(req.WalletID),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettlementResponse(output))
}
