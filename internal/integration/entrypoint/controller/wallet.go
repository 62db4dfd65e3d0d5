package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	"github.com/finance-tracker/ledger/internal/application/usecase/wallet"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// WalletController handles wallet endpoints.
type WalletController struct {
	createUseCase        *wallet.CreateWalletUseCase
	getUseCase           *wallet.GetWalletUseCase
	listUseCase          *wallet.ListWalletsUseCase
	updateUseCase        *wallet.UpdateWalletUseCase
	deleteUseCase        *wallet.DeleteWalletUseCase
	listTransfersUseCase *ledger.ListTransfersUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	createUseCase *wallet.CreateWalletUseCase,
	getUseCase *wallet.GetWalletUseCase,
	listUseCase *wallet.ListWalletsUseCase,
	updateUseCase *wallet.UpdateWalletUseCase,
	deleteUseCase *wallet.DeleteWalletUseCase,
	listTransfersUseCase *ledger.ListTransfersUseCase,
) *WalletController {
	return &WalletController{
		createUseCase:        createUseCase,
		getUseCase:           getUseCase,
		listUseCase:          listUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		listTransfersUseCase: listTransfersUseCase,
	}
}

// List handles GET /wallets requests.
func (c *WalletController) List(ctx *gin.Context) {
	input := wallet.ListWalletsInput{
		IncludeArchived: ctx.Query("include_archived") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletListResponse(output.Wallets))
}

// Create handles POST /wallets requests.
func (c *WalletController) Create(ctx *gin.Context) {
	var req dto.CreateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingWalletFields), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), wallet.CreateWalletInput{
		Name:           req.Name,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWalletResponse(output.Wallet))
}

// Get handles GET /wallets/:id requests.
func (c *WalletController) Get(ctx *gin.Context) {
	walletID, ok := parseID(ctx, "id", "wallet")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), wallet.GetWalletInput{WalletID: walletID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Rename handles PATCH /wallets/:id requests.
func (c *WalletController) Rename(ctx *gin.Context) {
	walletID, ok := parseID(ctx, "id", "wallet")
	if !ok {
		return
	}

	var req dto.RenameWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingWalletFields), err)
		return
	}

	output, err := c.updateUseCase.Rename(ctx.Request.Context(), wallet.RenameWalletInput{
		WalletID: walletID,
		Name:     req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Archive handles POST /wallets/:id/archive requests.
func (c *WalletController) Archive(ctx *gin.Context) {
	c.setArchived(ctx, true)
}

// Unarchive handles POST /wallets/:id/unarchive requests.
func (c *WalletController) Unarchive(ctx *gin.Context) {
	c.setArchived(ctx, false)
}

func (c *WalletController) setArchived(ctx *gin.Context, archived bool) {
	walletID, ok := parseID(ctx, "id", "wallet")
	if !ok {
		return
	}

	output, err := c.updateUseCase.SetArchived(ctx.Request.Context(), wallet.SetArchivedInput{
		WalletID: walletID,
		Archived: archived,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Delete handles DELETE /wallets/:id requests.
func (c *WalletController) Delete(ctx *gin.Context) {
	walletID, ok := parseID(ctx, "id", "wallet")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), wallet.DeleteWalletInput{WalletID: walletID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Transfers handles GET /wallets/:id/transfers requests.
func (c *WalletController) Transfers(ctx *gin.Context) {
	walletID, ok := parseID(ctx, "id", "wallet")
	if !ok {
		return
	}

	output, err := c.listTransfersUseCase.Execute(ctx.Request.Context(), ledger.ListTransfersInput{WalletID: walletID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransferListResponse(output.Transfers))
}
