package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// Sale books a production lot to a customer. A lot can be sold at most
// once; the store enforces that with a unique constraint on the lot
// reference, so of two concurrent sales exactly one commits.
type Sale struct {
	shared.BaseEntity
	ProductLotID uuid.UUID
	Customer     string
	SellingPrice decimal.Decimal
	SoldOn       time.Time
}

// NewSale creates a sale for the given lot. soldOn may be zero, in
// which case it defaults to today; sales are never back-dated further.
func NewSale(productLotID uuid.UUID, customer string, sellingPrice decimal.Decimal, soldOn time.Time) (*Sale, error) {
	if productLotID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Lot ID is required")
	}
	if customer == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Customer name is required")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Selling price cannot be negative")
	}
	if soldOn.IsZero() {
		soldOn = shared.Today()
	}

	return &Sale{
		BaseEntity:   shared.NewBaseEntity(),
		ProductLotID: productLotID,
		Customer:     customer,
		SellingPrice: sellingPrice,
		SoldOn:       shared.Date(soldOn),
	}, nil
}
