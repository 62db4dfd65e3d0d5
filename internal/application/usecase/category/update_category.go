package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// RenameCategoryInput represents the input for renaming a category.
type RenameCategoryInput struct {
	CategoryID uuid.UUID
	Name       string
}

// SetArchivedInput represents the input for archiving or restoring a category.
type SetArchivedInput struct {
	CategoryID uuid.UUID
	Archived   bool
}

// UpdateCategoryUseCase renames, archives and unarchives categories.
// The type of a category never changes once entries may reference it.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Rename changes the category name.
func (uc *UpdateCategoryUseCase) Rename(ctx context.Context, input RenameCategoryInput) (*CategoryOutput, error) {
	return uc.mutate(ctx, input.CategoryID, func(category *entity.Category) error {
		name, err := validateCategoryName(ctx, uc.categoryRepo, input.Name, category.ID)
		if err != nil {
			return err
		}
		category.Rename(name)
		return nil
	})
}

// SetArchived archives or unarchives the category. Archived categories keep
// their entries and stay usable by existing templates.
func (uc *UpdateCategoryUseCase) SetArchived(ctx context.Context, input SetArchivedInput) (*CategoryOutput, error) {
	return uc.mutate(ctx, input.CategoryID, func(category *entity.Category) error {
		category.SetArchived(input.Archived)
		return nil
	})
}

func (uc *UpdateCategoryUseCase) mutate(ctx context.Context, id uuid.UUID, change func(*entity.Category) error) (*CategoryOutput, error) {
	category, err := findCategory(ctx, uc.categoryRepo, id)
	if err != nil {
		return nil, err
	}

	if err := change(category); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	slog.Info("Category updated",
		"category_id", category.ID,
		"name", category.Name,
		"archived", category.Archived,
	)

	return &CategoryOutput{Category: category}, nil
}
