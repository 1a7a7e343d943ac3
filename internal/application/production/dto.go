package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/production"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// CreateLotRequest carries the inputs for composing a new lot.
type CreateLotRequest struct {
	ProductName    string
	ManufacturedOn time.Time
	Ingredients    []LotIngredientInput
}

// LotIngredientInput selects one ingredient for the lot. QuantityUsed
// is optional and stored as-is; nothing reads it back yet.
type LotIngredientInput struct {
	IngredientID uuid.UUID
	QuantityUsed *decimal.Decimal
}

// LotResponse is the read model for a production lot.
type LotResponse struct {
	ID             string                  `json:"id"`
	LotCode        string                  `json:"lot_code"`
	ProductName    string                  `json:"product_name"`
	ManufacturedOn string                  `json:"manufactured_on"`
	ExpiresOn      string                  `json:"expires_on"`
	Ingredients    []LotIngredientResponse `json:"ingredients,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

// LotIngredientResponse is the read model for one ingredient link.
type LotIngredientResponse struct {
	IngredientID string           `json:"ingredient_id"`
	QuantityUsed *decimal.Decimal `json:"quantity_used,omitempty"`
}

// ToLotResponse maps a domain lot to its read model
func ToLotResponse(lot *production.ProductionLot) LotResponse {
	links := make([]LotIngredientResponse, len(lot.Ingredients))
	for i, link := range lot.Ingredients {
		links[i] = LotIngredientResponse{
			IngredientID: link.IngredientID.String(),
			QuantityUsed: link.QuantityUsed,
		}
	}
	return LotResponse{
		ID:             lot.ID.String(),
		LotCode:        lot.LotCode,
		ProductName:    lot.ProductName,
		ManufacturedOn: shared.FormatDate(lot.ManufacturedOn),
		ExpiresOn:      shared.FormatDate(lot.ExpiresOn),
		Ingredients:    links,
		CreatedAt:      lot.CreatedAt,
	}
}

// ToLotResponses maps a slice of lots preserving order
func ToLotResponses(lots []production.ProductionLot) []LotResponse {
	out := make([]LotResponse, len(lots))
	for idx := range lots {
		out[idx] = ToLotResponse(&lots[idx])
	}
	return out
}
