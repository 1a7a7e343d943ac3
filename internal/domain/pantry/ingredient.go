package pantry

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// Ingredient is a raw material purchased into the pantry. It is the
// aggregate root for stocking and exhaustion. Ingredients are never
// deleted; lots created from them keep pointing at the original row.
type Ingredient struct {
	shared.BaseEntity
	Name        string
	Brand       string
	Supplier    string
	SupplierLot string // supplier's own lot/batch label, free text
	Notes       string
	MRP         decimal.Decimal // purchase price
	ExpiresOn   time.Time
	IsExhausted bool
}

// NewIngredient creates a newly stocked ingredient.
func NewIngredient(name, brand, supplier, supplierLot, notes string, mrp decimal.Decimal, expiresOn time.Time) (*Ingredient, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Ingredient name is required")
	}
	if supplierLot == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier lot label is required")
	}
	if expiresOn.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expiry date is required")
	}
	if mrp.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Purchase price cannot be negative")
	}

	return &Ingredient{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Brand:       brand,
		Supplier:    supplier,
		SupplierLot: supplierLot,
		Notes:       notes,
		MRP:         mrp,
		ExpiresOn:   shared.Date(expiresOn),
		IsExhausted: false,
	}, nil
}

// IsAvailable reports whether the ingredient can still go into a lot as
// of the given date: not flagged exhausted and not past expiry. Expiry
// day itself counts as available.
func (i *Ingredient) IsAvailable(asOf time.Time) bool {
	return !i.IsExhausted && !i.ExpiresOn.Before(shared.Date(asOf))
}

// MarkExhausted flips the one-way exhaustion flag. Marking an already
// exhausted ingredient is a no-op; the flag never resets. Returns true
// if the call changed state.
func (i *Ingredient) MarkExhausted() bool {
	if i.IsExhausted {
		return false
	}
	i.IsExhausted = true
	i.UpdatedAt = time.Now().UTC()
	return true
}
