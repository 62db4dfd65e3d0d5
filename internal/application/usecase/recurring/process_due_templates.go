package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ProcessDueTemplatesInput represents the input for a catch-up pass.
type ProcessDueTemplatesInput struct {
	Now time.Time
}

// ProcessDueTemplatesOutput summarizes a catch-up pass.
type ProcessDueTemplatesOutput struct {
	Created     []*entity.LedgerEntry
	Skipped     []entity.Occurrence // already generated by an earlier pass
	Failed      []entity.Occurrence
	Deactivated int
	Errors      int // templates whose catch-up could not be saved
}

// ProcessDueTemplatesUseCase generates the pending entries of every elapsed
// occurrence of the active templates.
//
// Each template is re-read and caught up under its own lock and its wallet
// lock, in its own transaction, with a savepoint per occurrence: a failed
// occurrence is rolled back alone and logged, while the other entries and the
// advanced next due date commit together. Entries carry their template and due date, so an occurrence that
// already produced an entry is skipped when a pass is repeated.
type ProcessDueTemplatesUseCase struct {
	transactor   adapter.Transactor
	locker       adapter.WalletLocker
	templateRepo adapter.RecurringTemplateRepository
	entryRepo    adapter.LedgerEntryRepository
	addEntry     *ledger.AddEntryUseCase
}

// NewProcessDueTemplatesUseCase creates a new ProcessDueTemplatesUseCase instance.
func NewProcessDueTemplatesUseCase(
	transactor adapter.Transactor,
	locker adapter.WalletLocker,
	templateRepo adapter.RecurringTemplateRepository,
	entryRepo adapter.LedgerEntryRepository,
	addEntry *ledger.AddEntryUseCase,
) *ProcessDueTemplatesUseCase {
	return &ProcessDueTemplatesUseCase{
		transactor:   transactor,
		locker:       locker,
		templateRepo: templateRepo,
		entryRepo:    entryRepo,
		addEntry:     addEntry,
	}
}

// Execute runs the catch-up pass. Only a failure to list the templates is returned;
// per-template failures are logged and counted.
func (uc *ProcessDueTemplatesUseCase) Execute(ctx context.Context, input ProcessDueTemplatesInput) (*ProcessDueTemplatesOutput, error) {
	templates, err := uc.templateRepo.FindByStatus(ctx, entity.RecurringStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active recurring templates: %w", err)
	}

	output := &ProcessDueTemplatesOutput{}
	for _, template := range templates {
		if !template.IsDue(input.Now) && !template.HasEnded(input.Now) {
			continue
		}

		result, err := uc.processTemplate(ctx, template, input.Now)
		if err != nil {
			slog.Error("Failed to process recurring template",
				"template_id", template.ID,
				"error", err,
			)
			output.Errors++
			continue
		}

		output.Created = append(output.Created, result.Created...)
		output.Skipped = append(output.Skipped, result.Skipped...)
		output.Failed = append(output.Failed, result.Failed...)
		output.Deactivated += result.Deactivated
	}

	slog.Info("Recurring templates processed",
		"templates", len(templates),
		"created", len(output.Created),
		"skipped", len(output.Skipped),
		"failed", len(output.Failed),
		"deactivated", output.Deactivated,
	)

	return output, nil
}

func (uc *ProcessDueTemplatesUseCase) processTemplate(
	ctx context.Context,
	listed *entity.RecurringTemplate,
	now time.Time,
) (*ProcessDueTemplatesOutput, error) {
	unlockTemplate, err := lockTemplate(ctx, uc.locker, listed.ID)
	if err != nil {
		return nil, err
	}
	defer unlockTemplate()

	result := &ProcessDueTemplatesOutput{}

	// The template may have been stopped, edited or deleted since it was listed.
	template, err := uc.templateRepo.FindByID(ctx, listed.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringTemplateNotFound) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to find recurring template: %w", err)
	}
	if !template.IsActive() || (!template.IsDue(now) && !template.HasEnded(now)) {
		return result, nil
	}

	ctx, unlock, err := ledger.LockWallets(ctx, uc.locker, template.WalletID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if template.IsDue(now) {
			next := template.NextDueDate
			for !next.After(now) {
				uc.generate(ctx, template, next, result)

				advanced := template.Frequency.Next(next)
				if !advanced.After(next) {
					return fmt.Errorf("frequency %q does not advance the due date", template.Frequency)
				}
				next = advanced
			}
			template.NextDueDate = next
		}

		if template.HasEnded(now) {
			template.Status = entity.RecurringStatusInactive
			result.Deactivated++
		}

		if err := uc.templateRepo.Update(ctx, template); err != nil {
			return fmt.Errorf("failed to update recurring template: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// generate creates the entry of one occurrence, recording the outcome in result.
func (uc *ProcessDueTemplatesUseCase) generate(
	ctx context.Context,
	template *entity.RecurringTemplate,
	dueDate time.Time,
	result *ProcessDueTemplatesOutput,
) {
	occurrence := entity.Occurrence{TemplateID: template.ID, DueDate: dueDate}

	exists, err := uc.entryRepo.ExistsByTemplateAndDate(ctx, template.ID, dueDate)
	if err != nil {
		uc.fail(occurrence, err, result)
		return
	}
	if exists {
		result.Skipped = append(result.Skipped, occurrence)
		return
	}

	templateID := template.ID
	out, err := uc.addEntry.Execute(ctx, ledger.AddEntryInput{
		WalletID:            template.WalletID,
		CategoryID:          template.CategoryID,
		Type:                template.Type,
		Status:              entity.EntryStatusPending,
		Amount:              template.Amount,
		Date:                dueDate,
		Description:         template.Description,
		RecurringTemplateID: &templateID,
	})
	if err != nil {
		uc.fail(occurrence, err, result)
		return
	}

	result.Created = append(result.Created, out.Entry)
}

func (uc *ProcessDueTemplatesUseCase) fail(occurrence entity.Occurrence, err error, result *ProcessDueTemplatesOutput) {
	slog.Warn("Failed to generate recurring entry",
		"template_id", occurrence.TemplateID,
		"due_date", occurrence.DueDate,
		"error", err,
	)
	result.Failed = append(result.Failed, occurrence)
}
