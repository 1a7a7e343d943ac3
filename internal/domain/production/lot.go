package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// DefaultShelfLifeDays is the shelf life applied to every lot when no
// other policy is configured.
const DefaultShelfLifeDays = 21

// ProductionLot is a single manufacturing batch of a finished product.
// It is created atomically with its ingredient links and is immutable
// afterwards; the only later state change is the sale recorded against
// it in the sales domain.
type ProductionLot struct {
	shared.BaseEntity
	LotCode        string
	ProductName    string
	ManufacturedOn time.Time
	ExpiresOn      time.Time
	Ingredients    []LotIngredient
}

// LotIngredient links a lot to one ingredient it was made from. Links
// are written once at lot creation and never mutated; removing one
// would break traceability.
type LotIngredient struct {
	ProductLotID uuid.UUID
	IngredientID uuid.UUID
	// QuantityUsed is reserved in the schema; no business rule reads it.
	QuantityUsed *decimal.Decimal
}

// NewProductionLot creates a lot with its ingredient links. The lot
// expires shelfLifeDays after manufacture. The ingredient set must be
// non-empty and free of duplicates; availability of each ingredient is
// the composer's responsibility, checked against the store at call time.
func NewProductionLot(lotCode, productName string, manufacturedOn time.Time, shelfLifeDays int, ingredients []LotIngredient) (*ProductionLot, error) {
	if lotCode == "" {
		return nil, shared.NewDomainError("CODE_GENERATION_FAILED", "Lot code is required")
	}
	if productName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product name is required")
	}
	if manufacturedOn.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Manufacture date is required")
	}
	if shelfLifeDays <= 0 {
		shelfLifeDays = DefaultShelfLifeDays
	}
	if len(ingredients) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "A lot requires at least one ingredient")
	}

	seen := make(map[uuid.UUID]struct{}, len(ingredients))
	for _, link := range ingredients {
		if link.IngredientID == uuid.Nil {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Ingredient ID cannot be empty")
		}
		if _, dup := seen[link.IngredientID]; dup {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Duplicate ingredient in lot")
		}
		seen[link.IngredientID] = struct{}{}
	}

	manufacturedOn = shared.Date(manufacturedOn)
	lot := &ProductionLot{
		BaseEntity:     shared.NewBaseEntity(),
		LotCode:        lotCode,
		ProductName:    productName,
		ManufacturedOn: manufacturedOn,
		ExpiresOn:      manufacturedOn.AddDate(0, 0, shelfLifeDays),
		Ingredients:    make([]LotIngredient, len(ingredients)),
	}
	for idx, link := range ingredients {
		link.ProductLotID = lot.ID
		lot.Ingredients[idx] = link
	}
	return lot, nil
}

// IngredientIDs returns the IDs of the linked ingredients.
func (l *ProductionLot) IngredientIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(l.Ingredients))
	for i, link := range l.Ingredients {
		ids[i] = link.IngredientID
	}
	return ids
}
