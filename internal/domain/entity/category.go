package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies ledger entries, credit card debts and recurring templates.
// Its type decides which kind of entry may reference it.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      EntryType
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType EntryType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename sets a new, already validated, name.
func (c *Category) Rename(name string) {
	c.Name = name
	c.UpdatedAt = time.Now().UTC()
}

// SetArchived hides or restores the category in default listings.
func (c *Category) SetArchived(archived bool) {
	c.Archived = archived
	c.UpdatedAt = time.Now().UTC()
}
