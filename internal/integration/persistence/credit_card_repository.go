package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// creditCardRepository implements the adapter.CreditCardRepository interface.
type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository instance.
func NewCreditCardRepository(db *gorm.DB) adapter.CreditCardRepository {
	return &creditCardRepository{
		db: db,
	}
}

// Create creates a new credit card in the database.
func (r *creditCardRepository) Create(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CreditCardFromEntity(card)
	return conn(ctx, r.db).Create(cardModel).Error
}

// FindByID retrieves a credit card by its ID.
func (r *creditCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	var cardModel model.CreditCardModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCreditCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// FindAll retrieves all credit cards ordered by name.
func (r *creditCardRepository) FindAll(ctx context.Context, includeArchived bool) ([]*entity.CreditCard, error) {
	var cardModels []model.CreditCardModel
	query := conn(ctx, r.db).Order("name ASC")
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}
	if err := query.Find(&cardModels).Error; err != nil {
		return nil, err
	}

	cards := make([]*entity.CreditCard, len(cardModels))
	for i := range cardModels {
		cards[i] = cardModels[i].ToEntity()
	}
	return cards, nil
}

// ExistsByName checks whether another card already uses the name (case-insensitive).
func (r *creditCardRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := conn(ctx, r.db).
		Model(&model.CreditCardModel{}).
		Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an existing credit card in the database.
func (r *creditCardRepository) Update(ctx context.Context, card *entity.CreditCard) error {
	card.UpdatedAt = time.Now().UTC()
	cardModel := model.CreditCardFromEntity(card)
	return conn(ctx, r.db).Save(cardModel).Error
}

// Delete removes a credit card from the database.
func (r *creditCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&model.CreditCardModel{}, "id = ?", id).Error
}
