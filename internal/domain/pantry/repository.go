package pantry

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IngredientRepository defines the interface for ingredient persistence
type IngredientRepository interface {
	// Save inserts a newly stocked ingredient
	Save(ctx context.Context, ingredient *Ingredient) error

	// FindByID finds an ingredient by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Ingredient, error)

	// FindByIDs finds all ingredients with the given IDs. Missing IDs
	// do not produce an error; the caller compares lengths.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Ingredient, error)

	// ListAvailable lists ingredients usable as of the given date,
	// ordered by name with insertion order breaking ties
	ListAvailable(ctx context.Context, asOf time.Time) ([]Ingredient, error)

	// ListUnavailable lists exhausted or expired ingredients as of the
	// given date, in the same order
	ListUnavailable(ctx context.Context, asOf time.Time) ([]Ingredient, error)

	// MarkExhausted sets is_exhausted on the ingredient. The update is
	// idempotent at the store level so concurrent callers all succeed.
	MarkExhausted(ctx context.Context, id uuid.UUID) error
}
