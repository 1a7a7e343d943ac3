package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// RecordSaleRequest carries the inputs for booking a sale.
type RecordSaleRequest struct {
	LotID        uuid.UUID
	Customer     string
	SellingPrice decimal.Decimal
	// SoldOn defaults to today when zero; back-dating is not supported.
	SoldOn time.Time
}

// SaleResponse is the read model for a recorded sale.
type SaleResponse struct {
	ID           string          `json:"id"`
	ProductLotID string          `json:"product_lot_id"`
	Customer     string          `json:"customer"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	SoldOn       string          `json:"sold_on"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DailyTotalResponse is the aggregate read model for one day's revenue.
type DailyTotalResponse struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// ToSaleResponse maps a domain sale to its read model
func ToSaleResponse(s *sales.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID.String(),
		ProductLotID: s.ProductLotID.String(),
		Customer:     s.Customer,
		SellingPrice: s.SellingPrice,
		SoldOn:       shared.FormatDate(s.SoldOn),
		CreatedAt:    s.CreatedAt,
	}
}

// ToSaleResponses maps a slice of sales preserving order
func ToSaleResponses(items []sales.Sale) []SaleResponse {
	out := make([]SaleResponse, len(items))
	for idx := range items {
		out[idx] = ToSaleResponse(&items[idx])
	}
	return out
}
