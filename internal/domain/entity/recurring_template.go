package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// RecurringStatus tells whether a template still generates entries.
type RecurringStatus string

const (
	RecurringStatusActive   RecurringStatus = "active"
	RecurringStatusInactive RecurringStatus = "inactive"
)

// RecurringTemplate periodically generates pending ledger entries until its end date.
type RecurringTemplate struct {
	ID          uuid.UUID
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Type        EntryType
	Amount      valueobject.Money
	StartDate   time.Time
	EndDate     time.Time
	NextDueDate time.Time
	Frequency   valueobject.Frequency
	Status      RecurringStatus
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecurringTemplate creates an active template whose first occurrence is due
// at the end of its start day. Start and end dates are normalized to 23:59:59.
func NewRecurringTemplate(
	walletID uuid.UUID,
	categoryID uuid.UUID,
	entryType EntryType,
	amount valueobject.Money,
	startDate time.Time,
	endDate time.Time,
	frequency valueobject.Frequency,
	description string,
) *RecurringTemplate {
	now := time.Now().UTC()

	return &RecurringTemplate{
		ID:          uuid.New(),
		WalletID:    walletID,
		CategoryID:  categoryID,
		Type:        entryType,
		Amount:      amount,
		StartDate:   valueobject.EndOfDay(startDate),
		EndDate:     valueobject.EndOfDay(endDate),
		NextDueDate: valueobject.EndOfDay(startDate),
		Frequency:   frequency,
		Status:      RecurringStatusActive,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsActive reports whether the template still generates entries.
func (t *RecurringTemplate) IsActive() bool {
	return t.Status == RecurringStatusActive
}

// IsDue reports whether an occurrence is due at now and the template has not ended.
func (t *RecurringTemplate) IsDue(now time.Time) bool {
	return t.IsActive() && !t.NextDueDate.After(now) && !t.EndDate.Before(now)
}

// HasEnded reports whether the end date has passed.
func (t *RecurringTemplate) HasEnded(now time.Time) bool {
	return t.EndDate.Before(now)
}

// Occurrence is one projected or generated due date of a template.
type Occurrence struct {
	TemplateID uuid.UUID
	DueDate    time.Time
}
