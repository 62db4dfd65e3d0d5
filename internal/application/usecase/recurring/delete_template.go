package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DeleteTemplateInput represents the input for template deletion.
type DeleteTemplateInput struct {
	TemplateID uuid.UUID
}

// DeleteTemplateUseCase removes a template. Entries it already generated are kept.
type DeleteTemplateUseCase struct {
	locker       adapter.WalletLocker
	templateRepo adapter.RecurringTemplateRepository
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(locker adapter.WalletLocker, templateRepo adapter.RecurringTemplateRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{
		locker:       locker,
		templateRepo: templateRepo,
	}
}

// Execute deletes the template.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, input DeleteTemplateInput) error {
	unlock, err := lockTemplate(ctx, uc.locker, input.TemplateID)
	if err != nil {
		return err
	}
	defer unlock()

	template, err := findTemplate(ctx, uc.templateRepo, input.TemplateID)
	if err != nil {
		return err
	}

	if err := uc.templateRepo.Delete(ctx, template.ID); err != nil {
		return fmt.Errorf("failed to delete recurring template: %w", err)
	}

	slog.Info("Recurring template deleted", "template_id", template.ID)

	return nil
}

// ListTemplatesInput represents the input for listing templates.
// A nil Status lists every template.
type ListTemplatesInput struct {
	Status *entity.RecurringStatus
}

// ListTemplatesOutput represents the output of listing templates.
type ListTemplatesOutput struct {
	Templates []*entity.RecurringTemplate
}

// ListTemplatesUseCase lists templates ordered by next due date.
type ListTemplatesUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(templateRepo adapter.RecurringTemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		templateRepo: templateRepo,
	}
}

// Execute lists the templates.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, input ListTemplatesInput) (*ListTemplatesOutput, error) {
	var (
		templates []*entity.RecurringTemplate
		err       error
	)
	if input.Status != nil {
		templates, err = uc.templateRepo.FindByStatus(ctx, *input.Status)
	} else {
		templates, err = uc.templateRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring templates: %w", err)
	}

	return &ListTemplatesOutput{
		Templates: templates,
	}, nil
}
