package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// CategoryUseCases groups the use cases served by CategoryController.
type CategoryUseCases struct {
	List   *category.ListCategoriesUseCase
	Create *category.CreateCategoryUseCase
	Update *category.UpdateCategoryUseCase
	Delete *category.DeleteCategoryUseCase
}

// CategoryController handles category endpoints.
type CategoryController struct {
	useCases CategoryUseCases
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(useCases CategoryUseCases) *CategoryController {
	return &CategoryController{useCases: useCases}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	var query dto.ListCategoriesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingCategoryFields), err)
		return
	}

	input := category.ListCategoriesInput{IncludeArchived: query.IncludeArchived}
	if query.Type != "" {
		entryType := entity.EntryType(query.Type)
		input.Type = &entryType
	}

	output, err := c.useCases.List.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingCategoryFields), err)
		return
	}

	output, err := c.useCases.Create.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name: req.Name,
		Type: entity.EntryType(req.Type),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Rename handles PATCH /categories/:id requests.
func (c *CategoryController) Rename(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id", "category")
	if !ok {
		return
	}

	var req dto.RenameCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, string(domainerror.ErrCodeMissingCategoryFields), err)
		return
	}

	output, err := c.useCases.Update.Rename(ctx.Request.Context(), category.RenameCategoryInput{
		CategoryID: categoryID,
		Name:       req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Archive handles POST /categories/:id/archive requests.
func (c *CategoryController) Archive(ctx *gin.Context) {
	c.setArchived(ctx, true)
}

// Unarchive handles POST /categories/:id/unarchive requests.
func (c *CategoryController) Unarchive(ctx *gin.Context) {
	c.setArchived(ctx, false)
}

func (c *CategoryController) setArchived(ctx *gin.Context, archived bool) {
	categoryID, ok := parseID(ctx, "id", "category")
	if !ok {
		return
	}

	output, err := c.useCases.Update.SetArchived(ctx.Request.Context(), category.SetArchivedInput{
		CategoryID: categoryID,
		Archived:   archived,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id", "category")
	if !ok {
		return
	}

	if err := c.useCases.Delete.Execute(ctx.Request.Context(), category.DeleteCategoryInput{CategoryID: categoryID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
