package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// UpdateTemplateInput represents the input for template update.
// The start date and the next due date are not editable.
type UpdateTemplateInput struct {
	TemplateID  uuid.UUID
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Type        entity.EntryType
	Amount      valueobject.Money
	EndDate     time.Time
	Frequency   valueobject.Frequency
	Description string
}

// UpdateTemplateOutput represents the output of a template update.
type UpdateTemplateOutput struct {
	Template *entity.RecurringTemplate
}

// UpdateTemplateUseCase edits and stops recurring templates.
type UpdateTemplateUseCase struct {
	locker       adapter.WalletLocker
	templateRepo adapter.RecurringTemplateRepository
	walletRepo   adapter.WalletRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateTemplateUseCase creates a new UpdateTemplateUseCase instance.
func NewUpdateTemplateUseCase(
	locker adapter.WalletLocker,
	templateRepo adapter.RecurringTemplateRepository,
	walletRepo adapter.WalletRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{
		locker:       locker,
		templateRepo: templateRepo,
		walletRepo:   walletRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute validates like creation, except that the stored start date may be in the past.
func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, input UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	unlock, err := lockTemplate(ctx, uc.locker, input.TemplateID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	template, err := findTemplate(ctx, uc.templateRepo, input.TemplateID)
	if err != nil {
		return nil, err
	}

	fields := templateFields{
		WalletID:    input.WalletID,
		CategoryID:  input.CategoryID,
		Type:        input.Type,
		Amount:      input.Amount,
		Frequency:   input.Frequency,
		Description: input.Description,
	}
	if err := validateFields(ctx, uc.walletRepo, uc.categoryRepo, fields); err != nil {
		return nil, err
	}

	if err := validateInterval(template.StartDate, input.EndDate, input.Frequency); err != nil {
		return nil, err
	}

	template.WalletID = input.WalletID
	template.CategoryID = input.CategoryID
	template.Type = input.Type
	template.Amount = input.Amount
	template.EndDate = valueobject.EndOfDay(input.EndDate)
	template.Frequency = input.Frequency
	template.Description = input.Description

	if err := uc.save(ctx, template); err != nil {
		return nil, err
	}

	slog.Info("Recurring template updated", "template_id", template.ID)

	return &UpdateTemplateOutput{
		Template: template,
	}, nil
}

// StopTemplateInput represents the input for stopping a template.
type StopTemplateInput struct {
	TemplateID uuid.UUID
}

// Stop deactivates an active template.
func (uc *UpdateTemplateUseCase) Stop(ctx context.Context, input StopTemplateInput) (*UpdateTemplateOutput, error) {
	unlock, err := lockTemplate(ctx, uc.locker, input.TemplateID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	template, err := findTemplate(ctx, uc.templateRepo, input.TemplateID)
	if err != nil {
		return nil, err
	}

	if !template.IsActive() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringTemplateInactive,
			"recurring template has already ended",
			domainerror.ErrRecurringTemplateInactive,
		)
	}

	template.Status = entity.RecurringStatusInactive
	if err := uc.save(ctx, template); err != nil {
		return nil, err
	}

	slog.Info("Recurring template stopped", "template_id", template.ID)

	return &UpdateTemplateOutput{
		Template: template,
	}, nil
}

func (uc *UpdateTemplateUseCase) save(ctx context.Context, template *entity.RecurringTemplate) error {
	template.UpdatedAt = time.Now().UTC()
	if err := uc.templateRepo.Update(ctx, template); err != nil {
		if errors.Is(err, domainerror.ErrRecurringTemplateNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringTemplateNotFound,
				"recurring template not found",
				domainerror.ErrRecurringTemplateNotFound,
			)
		}
		return fmt.Errorf("failed to update recurring template: %w", err)
	}
	return nil
}
