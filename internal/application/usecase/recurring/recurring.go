// Package recurring contains the recurring scheduler: templates that
// periodically generate pending ledger entries, and the catch-up pass that
// materializes every occurrence whose due date has elapsed.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// DefaultEndDate is used for templates created without an end date.
var DefaultEndDate = time.Date(2100, time.December, 31, 23, 59, 59, 0, time.UTC)

// templateFields are the attributes shared by creation and update.
type templateFields struct {
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Type        entity.EntryType
	Amount      valueobject.Money
	Frequency   valueobject.Frequency
	Description string
}

// validateFields checks everything but the dates.
func validateFields(ctx context.Context, walletRepo adapter.WalletRepository, categoryRepo adapter.CategoryRepository, fields templateFields) error {
	if !fields.Amount.IsPositive() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidRecurringAmount,
		)
	}

	if !fields.Type.IsValid() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidRecurringType,
		)
	}

	if !fields.Frequency.IsValid() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be one of 'daily', 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidFrequency,
		)
	}

	if len(fields.Description) > ledger.MaxDescriptionLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", ledger.MaxDescriptionLength),
			domainerror.ErrEntryDescriptionTooLong,
		)
	}

	if _, err := walletRepo.FindByID(ctx, fields.WalletID); err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringWalletNotFound,
				"wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		return fmt.Errorf("failed to find wallet: %w", err)
	}

	if _, err := categoryRepo.FindByID(ctx, fields.CategoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	return nil
}

// validateInterval checks the end date against the start date on calendar
// days: it must leave room for at least one period of the frequency.
func validateInterval(start, end time.Time, frequency valueobject.Frequency) error {
	startDay := valueobject.StartOfDay(start)
	endDay := valueobject.StartOfDay(end)

	if endDay.Before(startDay) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeEndDateBeforeStartDate,
			"end date cannot be before start date",
			domainerror.ErrEndDateBeforeStartDate,
		)
	}

	if !frequency.IsValid() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be one of 'daily', 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidFrequency,
		)
	}

	if frequency.AddTo(startDay, 1).After(endDay) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeIntervalTooShort,
			fmt.Sprintf("end date must be at least one %s period after the start date", frequency),
			domainerror.ErrIntervalTooShort,
		)
	}

	return nil
}

// validateNewInterval additionally rejects start dates before today.
func validateNewInterval(start, end time.Time, frequency valueobject.Frequency, now time.Time) error {
	if valueobject.StartOfDay(start).Before(valueobject.StartOfDay(now)) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeStartDateInPast,
			"start date cannot be before today",
			domainerror.ErrStartDateInPast,
		)
	}
	return validateInterval(start, end, frequency)
}

func findTemplate(ctx context.Context, templateRepo adapter.RecurringTemplateRepository, templateID uuid.UUID) (*entity.RecurringTemplate, error) {
	template, err := templateRepo.FindByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringTemplateNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringTemplateNotFound,
				"recurring template not found",
				domainerror.ErrRecurringTemplateNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recurring template: %w", err)
	}
	return template, nil
}

// lockTemplate serializes the writers of one template.
func lockTemplate(ctx context.Context, locker adapter.WalletLocker, templateID uuid.UUID) (func(), error) {
	unlock, err := locker.Lock(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock recurring template: %w", err)
	}
	return unlock, nil
}
