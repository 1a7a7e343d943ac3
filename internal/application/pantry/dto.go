package pantry

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/pantry"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// StockIngredientRequest carries the field values for stocking a newly
// purchased ingredient. Values arrive already scalar-validated from the
// UI; business rules are enforced here and in the domain.
type StockIngredientRequest struct {
	Name        string
	Brand       string
	Supplier    string
	SupplierLot string
	Notes       string
	MRP         decimal.Decimal
	ExpiresOn   time.Time
}

// IngredientResponse is the read model returned to callers.
type IngredientResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Supplier    string          `json:"supplier"`
	SupplierLot string          `json:"lot"`
	Notes       string          `json:"notes,omitempty"`
	MRP         decimal.Decimal `json:"mrp"`
	ExpiresOn   string          `json:"expires_on"`
	IsExhausted bool            `json:"is_exhausted"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToIngredientResponse maps a domain ingredient to its read model
func ToIngredientResponse(i *pantry.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:          i.ID.String(),
		Name:        i.Name,
		Brand:       i.Brand,
		Supplier:    i.Supplier,
		SupplierLot: i.SupplierLot,
		Notes:       i.Notes,
		MRP:         i.MRP,
		ExpiresOn:   shared.FormatDate(i.ExpiresOn),
		IsExhausted: i.IsExhausted,
		CreatedAt:   i.CreatedAt,
	}
}

// ToIngredientResponses maps a slice of ingredients preserving order
func ToIngredientResponses(items []pantry.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, len(items))
	for idx := range items {
		out[idx] = ToIngredientResponse(&items[idx])
	}
	return out
}
