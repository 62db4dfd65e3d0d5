package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// RecurringTemplateRepository defines the interface for recurring template persistence operations.
type RecurringTemplateRepository interface {
	// Create creates a new template in the database.
	Create(ctx context.Context, template *entity.RecurringTemplate) error

	// FindByID retrieves a template by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTemplate, error)

	// FindAll retrieves every template ordered by next due date.
	FindAll(ctx context.Context) ([]*entity.RecurringTemplate, error)

	// FindByStatus retrieves the templates with the given status ordered by next due date.
	FindByStatus(ctx context.Context, status entity.RecurringStatus) ([]*entity.RecurringTemplate, error)

	// Update updates an existing template in the database.
	// Returns domainerror.ErrRecurringTemplateNotFound when it no longer exists.
	Update(ctx context.Context, template *entity.RecurringTemplate) error

	// Delete removes a template from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
