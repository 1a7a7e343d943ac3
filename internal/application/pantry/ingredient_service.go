package pantry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/pantry"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// IngredientService handles pantry stocking and availability reads.
// Reads always go to the store; another station may have exhausted an
// ingredient since the last call, so nothing is cached here.
type IngredientService struct {
	repo pantry.IngredientRepository
	now  func() time.Time
}

// NewIngredientService creates a new IngredientService
func NewIngredientService(repo pantry.IngredientRepository) *IngredientService {
	return &IngredientService{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock overrides the service clock, used by tests
func (s *IngredientService) WithClock(now func() time.Time) *IngredientService {
	s.now = now
	return s
}

// Stock records a newly purchased ingredient
func (s *IngredientService) Stock(ctx context.Context, req StockIngredientRequest) (*IngredientResponse, error) {
	ingredient, err := pantry.NewIngredient(req.Name, req.Brand, req.Supplier, req.SupplierLot, req.Notes, req.MRP, req.ExpiresOn)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, ingredient); err != nil {
		return nil, err
	}

	response := ToIngredientResponse(ingredient)
	return &response, nil
}

// GetByID retrieves a single ingredient
func (s *IngredientService) GetByID(ctx context.Context, id uuid.UUID) (*IngredientResponse, error) {
	ingredient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToIngredientResponse(ingredient)
	return &response, nil
}

// ListAvailable lists ingredients usable as of the given date, sorted
// by name. A zero asOf means today.
func (s *IngredientService) ListAvailable(ctx context.Context, asOf time.Time) ([]IngredientResponse, error) {
	ingredients, err := s.repo.ListAvailable(ctx, s.resolveAsOf(asOf))
	if err != nil {
		return nil, err
	}
	return ToIngredientResponses(ingredients), nil
}

// ListUnavailable lists exhausted or expired ingredients as of the
// given date, sorted by name. A zero asOf means today.
func (s *IngredientService) ListUnavailable(ctx context.Context, asOf time.Time) ([]IngredientResponse, error) {
	ingredients, err := s.repo.ListUnavailable(ctx, s.resolveAsOf(asOf))
	if err != nil {
		return nil, err
	}
	return ToIngredientResponses(ingredients), nil
}

// MarkExhausted flags an ingredient as used up. The transition is
// one-way and idempotent, so racing stations and retries after a
// transient write failure are both safe.
func (s *IngredientService) MarkExhausted(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Ingredient ID is required")
	}
	return s.repo.MarkExhausted(ctx, id)
}

func (s *IngredientService) resolveAsOf(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return shared.Date(s.now())
	}
	return shared.Date(asOf)
}
