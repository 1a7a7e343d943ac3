package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create inserts the sale. The unique index on product_lot_id decides
// one-sale-per-lot; the losing writer of a concurrent pair gets
// ErrLotAlreadySold.
func (r *GormSaleRepository) Create(ctx context.Context, sale *sales.Sale) error {
	model := models.SaleModelFromDomain(sale)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrLotAlreadySold
		}
		return shared.ErrStoreWriteFailed
	}
	return nil
}

// ListByDay lists the sales recorded on the given day, in insertion order
func (r *GormSaleRepository) ListByDay(ctx context.Context, day time.Time) ([]sales.Sale, error) {
	var rows []models.SaleModel
	if err := r.db.WithContext(ctx).
		Where("sold_on = ?", shared.Date(day)).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, shared.ErrStoreUnavailable
	}
	items := make([]sales.Sale, len(rows))
	for idx := range rows {
		if err := rows[idx].Validate(); err != nil {
			return nil, shared.ErrStoreUnavailable
		}
		items[idx] = *rows[idx].ToDomain()
	}
	return items, nil
}

// TotalByDay sums selling prices over the given day's sales, computed
// in the store. A day with no sales totals zero.
func (r *GormSaleRepository) TotalByDay(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.SaleModel{}).
		Select("SUM(selling_price)").
		Where("sold_on = ?", shared.Date(day)).
		Scan(&total).Error; err != nil {
		return decimal.Zero, shared.ErrStoreUnavailable
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// isUniqueViolation reports whether err is a unique constraint
// violation. Postgres reports SQLSTATE 23505; the sqlite phrasing
// covers the in-memory test databases.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
