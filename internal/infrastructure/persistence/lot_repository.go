package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/production"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductionLotRepository implements ProductionLotRepository using GORM
type GormProductionLotRepository struct {
	db *gorm.DB
}

// NewGormProductionLotRepository creates a new GormProductionLotRepository
func NewGormProductionLotRepository(db *gorm.DB) *GormProductionLotRepository {
	return &GormProductionLotRepository{db: db}
}

// CreateWithLinks inserts the lot row and all of its ingredient links
// as one atomic unit. A link failure rolls the lot row back, so a lot
// without links never becomes visible.
func (r *GormProductionLotRepository) CreateWithLinks(ctx context.Context, lot *production.ProductionLot) error {
	model := models.ProductionLotModelFromDomain(lot)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		return shared.ErrStoreWriteFailed
	}
	return nil
}

// FindByID finds a lot with its ingredient links
func (r *GormProductionLotRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.ProductionLot, error) {
	var model models.ProductionLotModel
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&model, "id = ?", id).Error; err != nil {
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

// ListUnsold lists lots with no recorded sale, ordered by manufacture
// date ascending
func (r *GormProductionLotRepository) ListUnsold(ctx context.Context) ([]production.ProductionLot, error) {
	var rows []models.ProductionLotModel
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("NOT EXISTS (SELECT 1 FROM sales WHERE sales.product_lot_id = production_lots.id)").
		Order("manufactured_on ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, shared.ErrStoreUnavailable
	}
	lots := make([]production.ProductionLot, len(rows))
	for idx := range rows {
		if err := rows[idx].Validate(); err != nil {
			return nil, shared.ErrStoreUnavailable
		}
		lots[idx] = *rows[idx].ToDomain()
	}
	return lots, nil
}
