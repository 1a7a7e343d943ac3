package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/production"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// SalesService books sales against unsold lots and derives revenue
// rollups. Lot exclusivity is not decided here: the store's unique
// constraint on the lot reference picks the winner when two stations
// sell the same lot at once.
type SalesService struct {
	saleRepo sales.SaleRepository
	lotRepo  production.ProductionLotRepository
	now      func() time.Time
}

// NewSalesService creates a new SalesService
func NewSalesService(saleRepo sales.SaleRepository, lotRepo production.ProductionLotRepository) *SalesService {
	return &SalesService{
		saleRepo: saleRepo,
		lotRepo:  lotRepo,
		now:      time.Now,
	}
}

// WithClock overrides the service clock, used by tests
func (s *SalesService) WithClock(now func() time.Time) *SalesService {
	s.now = now
	return s
}

// RecordSale books a sale for the given lot. The lot must exist; a lot
// already sold fails with LOT_ALREADY_SOLD, surfaced by the store's
// constraint rather than a read-then-write check.
func (s *SalesService) RecordSale(ctx context.Context, req RecordSaleRequest) (*SaleResponse, error) {
	soldOn := req.SoldOn
	if soldOn.IsZero() {
		soldOn = shared.Date(s.now())
	}
	sale, err := sales.NewSale(req.LotID, req.Customer, req.SellingPrice, soldOn)
	if err != nil {
		return nil, err
	}

	// Existence check up front so an unknown lot reads as NOT_FOUND
	// instead of a constraint error.
	if _, err := s.lotRepo.FindByID(ctx, req.LotID); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// ListByDay lists the sales recorded on the given day. A zero day
// means today.
func (s *SalesService) ListByDay(ctx context.Context, day time.Time) ([]SaleResponse, error) {
	items, err := s.saleRepo.ListByDay(ctx, s.resolveDay(day))
	if err != nil {
		return nil, err
	}
	return ToSaleResponses(items), nil
}

// TotalSales sums selling prices over the given day, recomputed from
// the store on every call. A zero day means today.
func (s *SalesService) TotalSales(ctx context.Context, day time.Time) (*DailyTotalResponse, error) {
	resolved := s.resolveDay(day)
	total, err := s.saleRepo.TotalByDay(ctx, resolved)
	if err != nil {
		return nil, err
	}
	if total.IsZero() {
		total = decimal.Zero
	}
	return &DailyTotalResponse{
		Day:   shared.FormatDate(resolved),
		Total: total,
	}, nil
}

func (s *SalesService) resolveDay(day time.Time) time.Time {
	if day.IsZero() {
		return shared.Date(s.now())
	}
	return shared.Date(day)
}
