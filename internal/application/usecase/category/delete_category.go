package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase removes categories nothing references.
type DeleteCategoryUseCase struct {
	transactor   adapter.Transactor
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(transactor adapter.Transactor, categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		transactor:   transactor,
		categoryRepo: categoryRepo,
	}
}

// Execute deletes the category. It is refused while any entry, debt or
// recurring template references it; archive it instead.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := findCategory(ctx, uc.categoryRepo, input.CategoryID); err != nil {
			return err
		}

		usage, err := uc.categoryRepo.CountUsage(ctx, input.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to count category usage: %w", err)
		}
		if usage > 0 {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				fmt.Sprintf("category is referenced %d times and cannot be deleted", usage),
				domainerror.ErrCategoryInUse,
			)
		}

		if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Category deleted", "category_id", input.CategoryID)

	return nil
}
