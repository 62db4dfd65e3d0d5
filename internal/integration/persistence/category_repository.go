package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return conn(ctx, r.db).Create(model.CategoryFromEntity(category)).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&categoryModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return categoryModel.ToEntity(), nil
}

// FindAll returns categories ordered by type, then name.
func (r *categoryRepository) FindAll(ctx context.Context, includeArchived bool) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	query := conn(ctx, r.db).Order("type ASC").Order("name ASC")
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}
	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := conn(ctx, r.db).
		Model(&model.CategoryModel{}).
		Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := conn(ctx, r.db).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":       category.Name,
			"archived":   category.Archived,
			"updated_at": category.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&model.CategoryModel{}, "id = ?", id).Error
}

func (r *categoryRepository) CountUsage(ctx context.Context, id uuid.UUID) (int64, error) {
	var total int64
	for _, m := range []interface{}{
		&model.LedgerEntryModel{},
		&model.CreditCardDebtModel{},
		&model.RecurringTemplateModel{},
	} {
		var count int64
		if err := conn(ctx, r.db).Model(m).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}
