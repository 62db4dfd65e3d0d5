package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateTemplateInput represents the input for template creation.
// A nil EndDate uses the configured default end date.
type CreateTemplateInput struct {
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Type        entity.EntryType
	Amount      valueobject.Money
	StartDate   time.Time
	EndDate     *time.Time
	Frequency   valueobject.Frequency
	Description string
}

// CreateTemplateOutput represents the output of template creation.
type CreateTemplateOutput struct {
	Template *entity.RecurringTemplate
}

// CreateTemplateUseCase handles recurring template creation logic.
type CreateTemplateUseCase struct {
	templateRepo   adapter.RecurringTemplateRepository
	walletRepo     adapter.WalletRepository
	categoryRepo   adapter.CategoryRepository
	clock          adapter.Clock
	defaultEndDate time.Time
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
// A zero defaultEndDate falls back to DefaultEndDate.
func NewCreateTemplateUseCase(
	templateRepo adapter.RecurringTemplateRepository,
	walletRepo adapter.WalletRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
	defaultEndDate time.Time,
) *CreateTemplateUseCase {
	if defaultEndDate.IsZero() {
		defaultEndDate = DefaultEndDate
	}

	return &CreateTemplateUseCase{
		templateRepo:   templateRepo,
		walletRepo:     walletRepo,
		categoryRepo:   categoryRepo,
		clock:          clock,
		defaultEndDate: defaultEndDate,
	}
}

// Execute performs the template creation.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*CreateTemplateOutput, error) {
	endDate := uc.defaultEndDate
	if input.EndDate != nil {
		endDate = *input.EndDate
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

	if err := validateNewInterval(input.StartDate, endDate, input.Frequency, uc.clock.Now()); err != nil {
		return nil, err
	}

	template := entity.NewRecurringTemplate(
		input.WalletID,
		input.CategoryID,
		input.Type,
		input.Amount,
		input.StartDate,
		endDate,
		input.Frequency,
		input.Description,
	)
	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create recurring template: %w", err)
	}

	slog.Info("Recurring template created",
		"template_id", template.ID,
		"wallet_id", template.WalletID,
		"frequency", template.Frequency,
		"next_due_date", template.NextDueDate,
	)

	return &CreateTemplateOutput{
		Template: template,
	}, nil
}
