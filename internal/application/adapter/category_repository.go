package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindAll(ctx context.Context, includeArchived bool) ([]*entity.Category, error)

	// ExistsByName checks whether another category already uses the name (case-insensitive).
	// Pass uuid.Nil as excludeID when creating.
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountUsage returns how many entries, debts and recurring templates reference the category.
	CountUsage(ctx context.Context, id uuid.UUID) (int64, error)
}
