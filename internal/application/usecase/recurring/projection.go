package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// maxProjectedOccurrences bounds a single projection.
const maxProjectedOccurrences = 10000

// ComputeLastOccurrenceDateInput represents the input for the last occurrence preview.
type ComputeLastOccurrenceDateInput struct {
	StartDate time.Time
	EndDate   time.Time
	Frequency valueobject.Frequency
}

// ComputeLastOccurrenceDateOutput represents the output of the last occurrence preview.
type ComputeLastOccurrenceDateOutput struct {
	LastOccurrenceDate time.Time
}

// ComputeLastOccurrenceDateUseCase previews the date of the final entry a new
// template would generate, without creating anything.
type ComputeLastOccurrenceDateUseCase struct {
	clock adapter.Clock
}

// NewComputeLastOccurrenceDateUseCase creates a new ComputeLastOccurrenceDateUseCase instance.
func NewComputeLastOccurrenceDateUseCase(clock adapter.Clock) *ComputeLastOccurrenceDateUseCase {
	return &ComputeLastOccurrenceDateUseCase{
		clock: clock,
	}
}

// Execute validates the schedule like template creation and returns the last occurrence date.
func (uc *ComputeLastOccurrenceDateUseCase) Execute(ctx context.Context, input ComputeLastOccurrenceDateInput) (*ComputeLastOccurrenceDateOutput, error) {
	if err := validateNewInterval(input.StartDate, input.EndDate, input.Frequency, uc.clock.Now()); err != nil {
		return nil, err
	}

	return &ComputeLastOccurrenceDateOutput{
		LastOccurrenceDate: LastOccurrenceDate(input.StartDate, input.EndDate, input.Frequency),
	}, nil
}

// LastOccurrenceDate counts the whole periods between the start and end days
// and steps back one period when the result overshoots the end day.
func LastOccurrenceDate(start, end time.Time, frequency valueobject.Frequency) time.Time {
	startDay := valueobject.StartOfDay(start)
	endDay := valueobject.StartOfDay(end)

	periods := frequency.PeriodsBetween(startDay, endDay)
	last := frequency.AddTo(startDay, periods)
	if last.After(endDay) {
		last = frequency.AddTo(startDay, periods-1)
	}
	return last
}

// ProjectOccurrencesInput represents the input for the future entries preview.
type ProjectOccurrencesInput struct {
	From time.Time
	To   time.Time
}

// ProjectOccurrencesOutput holds the pending entries the active templates would
// generate in the window. The entries are never persisted.
type ProjectOccurrencesOutput struct {
	Entries []*entity.LedgerEntry
}

// ProjectOccurrencesUseCase previews future recurring entries. Templates are not modified.
type ProjectOccurrencesUseCase struct {
	templateRepo adapter.RecurringTemplateRepository
}

// NewProjectOccurrencesUseCase creates a new ProjectOccurrencesUseCase instance.
func NewProjectOccurrencesUseCase(templateRepo adapter.RecurringTemplateRepository) *ProjectOccurrencesUseCase {
	return &ProjectOccurrencesUseCase{
		templateRepo: templateRepo,
	}
}

// Execute lists every occurrence due between the start of From's day and the end of To's day.
func (uc *ProjectOccurrencesUseCase) Execute(ctx context.Context, input ProjectOccurrencesInput) (*ProjectOccurrencesOutput, error) {
	templates, err := uc.templateRepo.FindByStatus(ctx, entity.RecurringStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active recurring templates: %w", err)
	}

	from := valueobject.StartOfDay(input.From)
	to := valueobject.EndOfDay(input.To)

	output := &ProjectOccurrencesOutput{}
	for _, template := range templates {
		templateID := template.ID
		next := template.NextDueDate

		for !next.After(to) && !next.After(template.EndDate) {
			if len(output.Entries) >= maxProjectedOccurrences {
				return output, nil
			}

			if !next.Before(from) {
				entry := entity.NewLedgerEntry(
					template.WalletID,
					template.CategoryID,
					template.Type,
					entity.EntryStatusPending,
					template.Amount,
					next,
					template.Description,
				)
				entry.RecurringTemplateID = &templateID
				output.Entries = append(output.Entries, entry)
			}

			advanced := template.Frequency.Next(next)
			if !advanced.After(next) {
				break
			}
			next = advanced
		}
	}

	return output, nil
}
