package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/recurring"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring template endpoints.
type RecurringController struct {
	createUseCase         *recurring.CreateTemplateUseCase
	listUseCase           *recurring.ListTemplatesUseCase
	updateUseCase         *recurring.UpdateTemplateUseCase
	deleteUseCase         *recurring.DeleteTemplateUseCase
	processUseCase        *recurring.ProcessDueTemplatesUseCase
	lastOccurrenceUseCase *recurring.ComputeLastOccurrenceDateUseCase
	projectionUseCase     *recurring.ProjectOccurrencesUseCase
	clock                 adapter.Clock
}

// RecurringUseCases groups the use cases served by the recurring controller.
type RecurringUseCases struct {
	Create         *recurring.CreateTemplateUseCase
	List           *recurring.ListTemplatesUseCase
	Update         *recurring.UpdateTemplateUseCase
	Delete         *recurring.DeleteTemplateUseCase
	Process        *recurring.ProcessDueTemplatesUseCase
	LastOccurrence *recurring.ComputeLastOccurrenceDateUseCase
	Projection     *recurring.ProjectOccurrencesUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(useCases RecurringUseCases, clock adapter.Clock) *RecurringController {
	return &RecurringController{
		createUseCase:         useCases.Create,
		listUseCase:           useCases.List,
		updateUseCase:         useCases.Update,
		deleteUseCase:         useCases.Delete,
		processUseCase:        useCases.Process,
		lastOccurrenceUseCase: useCases.LastOccurrence,
		projectionUseCase:     useCases.Projection,
		clock:                 clock,
	}
}

// List handles GET /recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	var input recurring.ListTemplatesInput
	if value := ctx.Query("status"); value != "" {
		status := entity.RecurringStatus(value)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateListResponse(output.Templates))
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}
	endDate, err := dto.ParseOptionalDate(req.EndDate)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateTemplateInput{
		WalletID:    uuid.MustParse(req.WalletID),
		CategoryID:  uuid.MustParse(req.CategoryID),
		Type:        entity.EntryType(req.Type),
		Amount:      req.Amount,
		StartDate:   startDate,
		EndDate:     endDate,
		Frequency:   valueobject.Frequency(req.Frequency),
		Description: req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTemplateResponse(output.Template))
}

// Update handles PATCH /recurring/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	templateID, ok := parseID(ctx, "id", "recurring template")
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), recurring.UpdateTemplateInput{
		TemplateID:  templateID,
		WalletID:    uuid.MustParse(req.WalletID),
		CategoryID:  uuid.MustParse(req.CategoryID),
		Type:        entity.EntryType(req.Type),
		Amount:      req.Amount,
		EndDate:     endDate,
		Frequency:   valueobject.Frequency(req.Frequency),
		Description: req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(output.Template))
}

// Stop handles POST /recurring/:id/stop requests.
func (c *RecurringController) Stop(ctx *gin.Context) {
	templateID, ok := parseID(ctx, "id", "recurring template")
	if !ok {
		return
	}

	output, err := c.updateUseCase.Stop(ctx.Request.Context(), recurring.StopTemplateInput{TemplateID: templateID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(output.Template))
}

// Delete handles DELETE /recurring/:id requests.
// Entries already generated by the template are kept.
func (c *RecurringController) Delete(ctx *gin.Context) {
	templateID, ok := parseID(ctx, "id", "recurring template")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteTemplateInput{TemplateID: templateID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Process handles POST /recurring/process requests by running a catch-up pass now.
func (c *RecurringController) Process(ctx *gin.Context) {
	output, err := c.processUseCase.Execute(ctx.Request.Context(), recurring.ProcessDueTemplatesInput{
		Now: c.clock.Now(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProcessTemplatesResponse(output))
}

// LastOccurrence handles GET /recurring/last-occurrence requests.
func (c *RecurringController) LastOccurrence(ctx *gin.Context) {
	var query dto.LastOccurrenceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	startDate, err := dto.ParseDate(query.StartDate)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}
	endDate, err := dto.ParseDate(query.EndDate)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	output, err := c.lastOccurrenceUseCase.Execute(ctx.Request.Context(), recurring.ComputeLastOccurrenceDateInput{
		StartDate: startDate,
		EndDate:   endDate,
		Frequency: valueobject.Frequency(query.Frequency),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LastOccurrenceResponse{
		LastOccurrenceDate: dto.FormatDate(output.LastOccurrenceDate),
	})
}

// Projection handles GET /recurring/projection requests.
func (c *RecurringController) Projection(ctx *gin.Context) {
	var query dto.ProjectionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	from, err := dto.ParseDate(query.From)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}
	to, err := dto.ParseDate(query.To)
	if err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingRecurringFields), err)
		return
	}

	output, err := c.projectionUseCase.Execute(ctx.Request.Context(), recurring.ProjectOccurrencesInput{
		From: from,
		To:   to,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}
