package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// EntryController handles ledger entry and transfer endpoints.
type EntryController struct {
	addUseCase      *ledger.AddEntryUseCase
	getUseCase      *ledger.GetEntryUseCase
	listUseCase     *ledger.ListEntriesUseCase
	updateUseCase   *ledger.UpdateEntryUseCase
	confirmUseCase  *ledger.ConfirmEntryUseCase
	deleteUseCase   *ledger.DeleteEntryUseCase
	transferUseCase *ledger.TransferMoneyUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	addUseCase *ledger.AddEntryUseCase,
	getUseCase *ledger.GetEntryUseCase,
	listUseCase *ledger.ListEntriesUseCase,
	updateUseCase *ledger.UpdateEntryUseCase,
	confirmUseCase *ledger.ConfirmEntryUseCase,
	deleteUseCase *ledger.DeleteEntryUseCase,
	transferUseCase *ledger.TransferMoneyUseCase,
) *EntryController {
	return &EntryController{
		addUseCase:      addUseCase,
		getUseCase:      getUseCase,
		listUseCase:     listUseCase,
		updateUseCase:   updateUseCase,
		confirmUseCase:  confirmUseCase,
		deleteUseCase:   deleteUseCase,
		transferUseCase: transferUseCase,
	}
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	var query dto.ListEntriesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingEntryFields), err)
		return
	}

	// Build filter from query parameters
	var filter adapter.EntryFilter
	if query.WalletID != "" {
		walletID := uuid.MustParse(query.WalletID)
		filter.WalletID = &walletID
	}
	if query.CategoryID != "" {
		categoryID := uuid.MustParse(query.CategoryID)
		filter.CategoryID = &categoryID
	}
	if query.Type != "" {
		entryType := entity.EntryType(query.Type)
		filter.Type = &entryType
	}
	if query.Status != "" {
		status := entity.EntryStatus(query.Status)
		filter.Status = &status
	}

	var err error
	if filter.StartDate, err = dto.ParseOptionalDate(query.StartDate); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingEntryFields), err)
		return
	}
	if filter.EndDate, err = dto.ParseOptionalDate(query.EndDate); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingEntryFields), err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), ledger.ListEntriesInput{Filter: filter})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingEntryFields), err)
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingEntryFields), err)
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), ledger.AddEntryInput{
		WalletID:    uuid.MustParse(req.WalletID),
		CategoryID:  uuid.MustParse(req.CategoryID),
		Type:        entity.EntryType(req.Type),
		Status:      entity.EntryStatus(req.Status),
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// Get handles GET /entries/:id requests.
func (c *EntryController) Get(ctx *gin.Context) {
	entryID, ok := parseID(ctx, "id", "entry")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), ledger.GetEntryInput{EntryID: entryID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Update handles PATCH /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	entryID, ok := parseID(ctx, "id", "entry")
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingEntryFields), err)
		return
	}

	input := ledger.UpdateEntryInput{
		EntryID:     entryID,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.WalletID != nil {
		walletID := uuid.MustParse(*req.WalletID)
		input.WalletID = &walletID
	}
	if req.CategoryID != nil {
		categoryID := uuid.MustParse(*req.CategoryID)
		input.CategoryID = &categoryID
	}
	if req.Type != nil {
		entryType := entity.EntryType(*req.Type)
		input.Type = &entryType
	}
	if req.Status != nil {
		status := entity.EntryStatus(*req.Status)
		input.Status = &status
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			bindingError(ctx, string(domainerror.ErrCodeMissingEntryFields), err)
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Confirm handles POST /entries/:id/confirm requests.
func (c *EntryController) Confirm(ctx *gin.Context) {
	entryID, ok := parseID(ctx, "id", "entry")
	if !ok {
		return
	}

	output, err := c.confirmUseCase.Execute(ctx.Request.Context(), ledger.ConfirmEntryInput{EntryID: entryID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	entryID, ok := parseID(ctx, "id", "entry")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteEntryInput{EntryID: entryID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Transfer handles POST /transfers requests.
func (c *EntryController) Transfer(ctx *gin.Context) {
	var req dto.TransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingWalletFields), err)
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingWalletFields), err)
		return
	}

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), ledger.TransferMoneyInput{
		SenderWalletID:   uuid.MustParse(req.SenderWalletID),
		ReceiverWalletID: uuid.MustParse(req.ReceiverWalletID),
		Amount:           req.Amount,
		Date:             date,
		Description:      req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransferResponse(output.Transfer))
}
