package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// recurringTemplateRepository implements the adapter.RecurringTemplateRepository interface.
type recurringTemplateRepository struct {
	db *gorm.DB
}

// NewRecurringTemplateRepository creates a new recurring template repository instance.
func NewRecurringTemplateRepository(db *gorm.DB) adapter.RecurringTemplateRepository {
	return &recurringTemplateRepository{
		db: db,
	}
}

// Create creates a new template in the database.
func (r *recurringTemplateRepository) Create(ctx context.Context, template *entity.RecurringTemplate) error {
	templateModel := model.RecurringTemplateFromEntity(template)
	return conn(ctx, r.db).Create(templateModel).Error
}

// FindByID retrieves a template by its ID.
func (r *recurringTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTemplate, error) {
	var templateModel model.RecurringTemplateModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&templateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringTemplateNotFound
		}
		return nil, result.Error
	}
	return templateModel.ToEntity(), nil
}

// FindAll retrieves every template ordered by next due date.
func (r *recurringTemplateRepository) FindAll(ctx context.Context) ([]*entity.RecurringTemplate, error) {
	return r.find(conn(ctx, r.db))
}

// FindByStatus retrieves the templates with the given status ordered by next due date.
func (r *recurringTemplateRepository) FindByStatus(ctx context.Context, status entity.RecurringStatus) ([]*entity.RecurringTemplate, error) {
	return r.find(conn(ctx, r.db).Where("status = ?", string(status)))
}

func (r *recurringTemplateRepository) find(query *gorm.DB) ([]*entity.RecurringTemplate, error) {
	var templateModels []model.RecurringTemplateModel
	if err := query.Order("next_due_date ASC").Find(&templateModels).Error; err != nil {
		return nil, err
	}

	templates := make([]*entity.RecurringTemplate, len(templateModels))
	for i := range templateModels {
		templates[i] = templateModels[i].ToEntity()
	}
	return templates, nil
}

// Update updates an existing template in the database.
func (r *recurringTemplateRepository) Update(ctx context.Context, template *entity.RecurringTemplate) error {
	template.UpdatedAt = time.Now().UTC()
	result := conn(ctx, r.db).
		Model(&model.RecurringTemplateModel{}).
		Where("id = ?", template.ID).
		Updates(map[string]interface{}{
			"wallet_id":     template.WalletID,
			"category_id":   template.CategoryID,
			"type":          string(template.Type),
			"amount":        template.Amount.Decimal(),
			"end_date":      template.EndDate,
			"next_due_date": template.NextDueDate,
			"frequency":     string(template.Frequency),
			"status":        string(template.Status),
			"description":   template.Description,
			"updated_at":    template.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringTemplateNotFound
	}
	return nil
}

// Delete removes a template from the database.
func (r *recurringTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&model.RecurringTemplateModel{}, "id = ?", id).Error
}
