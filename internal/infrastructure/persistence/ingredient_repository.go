package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/pantry"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormIngredientRepository implements IngredientRepository using GORM
type GormIngredientRepository struct {
	db *gorm.DB
}

// NewGormIngredientRepository creates a new GormIngredientRepository
func NewGormIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

// Save inserts a newly stocked ingredient
func (r *GormIngredientRepository) Save(ctx context.Context, ingredient *pantry.Ingredient) error {
	model := models.IngredientModelFromDomain(ingredient)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return shared.ErrStoreWriteFailed
	}
	return nil
}

// FindByID finds an ingredient by its ID
func (r *GormIngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Ingredient, error) {
	var model models.IngredientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.ErrStoreUnavailable
	}
	if err := model.Validate(); err != nil {
		return nil, shared.ErrStoreUnavailable
	}
	return model.ToDomain(), nil
}

// FindByIDs finds all ingredients with the given IDs. Missing IDs do
// not produce an error; the caller compares lengths.
func (r *GormIngredientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]pantry.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.IngredientModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, shared.ErrStoreUnavailable
	}
	return toDomainIngredients(rows)
}

// ListAvailable lists ingredients usable as of the given date, ordered
// by name with insertion order breaking ties
func (r *GormIngredientRepository) ListAvailable(ctx context.Context, asOf time.Time) ([]pantry.Ingredient, error) {
	var rows []models.IngredientModel
	if err := r.db.WithContext(ctx).
		Where("is_exhausted = ? AND expires_on >= ?", false, shared.Date(asOf)).
		Order("name ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, shared.ErrStoreUnavailable
	}
	return toDomainIngredients(rows)
}

// ListUnavailable lists exhausted or expired ingredients as of the
// given date
func (r *GormIngredientRepository) ListUnavailable(ctx context.Context, asOf time.Time) ([]pantry.Ingredient, error) {
	var rows []models.IngredientModel
	if err := r.db.WithContext(ctx).
		Where("is_exhausted = ? OR expires_on < ?", true, shared.Date(asOf)).
		Order("name ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, shared.ErrStoreUnavailable
	}
	return toDomainIngredients(rows)
}

// MarkExhausted sets is_exhausted on the ingredient. The update writes
// the same terminal value for every caller, so concurrent exhaustion
// requests all succeed.
func (r *GormIngredientRepository) MarkExhausted(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.IngredientModel{}).
		Where("id = ?", id).
		Update("is_exhausted", true)
	if result.Error != nil {
		return shared.ErrStoreWriteFailed
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// toDomainIngredients maps rows into domain entities. A row that fails
// integrity validation poisons the whole read; a partial list never
// reaches the caller.
func toDomainIngredients(rows []models.IngredientModel) ([]pantry.Ingredient, error) {
	ingredients := make([]pantry.Ingredient, len(rows))
	for idx := range rows {
		if err := rows[idx].Validate(); err != nil {
			return nil, shared.ErrStoreUnavailable
		}
		ingredients[idx] = *rows[idx].ToDomain()
	}
	return ingredients, nil
}
