package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// Create inserts the sale. The store's unique constraint on the lot
	// reference is the authority for one-sale-per-lot; a violation
	// surfaces as ErrLotAlreadySold on the losing writer.
	Create(ctx context.Context, sale *Sale) error

	// ListByDay lists the sales recorded on the given day, in
	// insertion order
	ListByDay(ctx context.Context, day time.Time) ([]Sale, error)

	// TotalByDay sums selling prices over the given day's sales,
	// computed in the store. A day with no sales totals zero.
	TotalByDay(ctx context.Context, day time.Time) (decimal.Decimal, error)
}
