package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/pantry"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/production"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// LotService composes production lots: it validates inputs, re-checks
// ingredient availability against the store, allocates a date-scoped
// lot code, and writes the lot with its links as one unit.
type LotService struct {
	lotRepo        production.ProductionLotRepository
	ingredientRepo pantry.IngredientRepository
	allocator      production.LotCodeAllocator
	shelfLifeDays  int
	codePrefix     string
	now            func() time.Time
}

// NewLotService creates a new LotService
func NewLotService(
	lotRepo production.ProductionLotRepository,
	ingredientRepo pantry.IngredientRepository,
	allocator production.LotCodeAllocator,
	shelfLifeDays int,
	codePrefix string,
) *LotService {
	if shelfLifeDays <= 0 {
		shelfLifeDays = production.DefaultShelfLifeDays
	}
	if codePrefix == "" {
		codePrefix = production.DefaultLotCodePrefix
	}
	return &LotService{
		lotRepo:        lotRepo,
		ingredientRepo: ingredientRepo,
		allocator:      allocator,
		shelfLifeDays:  shelfLifeDays,
		codePrefix:     codePrefix,
		now:            time.Now,
	}
}

// WithClock overrides the service clock, used by tests
func (s *LotService) WithClock(now func() time.Time) *LotService {
	s.now = now
	return s
}

// CreateLot creates a production lot from the selected ingredients.
// Validation failures are reported before any write. The lot row and
// its links commit together; a failure after code allocation leaves at
// most a consumed sequence number behind, never a partial lot.
func (s *LotService) CreateLot(ctx context.Context, req CreateLotRequest) (*LotResponse, error) {
	if req.ProductName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product name is required")
	}
	if len(req.Ingredients) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Select at least one ingredient")
	}
	manufacturedOn := req.ManufacturedOn
	if manufacturedOn.IsZero() {
		manufacturedOn = shared.Date(s.now())
	}

	ids := make([]uuid.UUID, len(req.Ingredients))
	seen := make(map[uuid.UUID]struct{}, len(req.Ingredients))
	for i, in := range req.Ingredients {
		if in.IngredientID == uuid.Nil {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Ingredient ID is required")
		}
		if _, dup := seen[in.IngredientID]; dup {
			return nil, shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Ingredient %s is listed twice", in.IngredientID))
		}
		seen[in.IngredientID] = struct{}{}
		ids[i] = in.IngredientID
	}

	// Availability is re-checked against the store here, not against
	// whatever list the caller rendered the picker from.
	ingredients, err := s.ingredientRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*pantry.Ingredient, len(ingredients))
	for i := range ingredients {
		byID[ingredients[i].ID] = &ingredients[i]
	}
	asOf := shared.Date(s.now())
	for _, id := range ids {
		ingredient, ok := byID[id]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Ingredient %s does not exist", id))
		}
		if !ingredient.IsAvailable(asOf) {
			return nil, shared.NewDomainError("INGREDIENT_UNAVAILABLE",
				fmt.Sprintf("Ingredient %q is exhausted or past its expiry date", ingredient.Name))
		}
	}

	sequence, err := s.allocator.NextSequence(ctx, manufacturedOn)
	if err != nil {
		return nil, err
	}
	code := production.FormatLotCode(s.codePrefix, manufacturedOn, sequence)

	links := make([]production.LotIngredient, len(req.Ingredients))
	for i, in := range req.Ingredients {
		links[i] = production.LotIngredient{
			IngredientID: in.IngredientID,
			QuantityUsed: in.QuantityUsed,
		}
	}
	lot, err := production.NewProductionLot(code, req.ProductName, manufacturedOn, s.shelfLifeDays, links)
	if err != nil {
		return nil, err
	}

	if err := s.lotRepo.CreateWithLinks(ctx, lot); err != nil {
		return nil, err
	}

	response := ToLotResponse(lot)
	return &response, nil
}

// GetByID retrieves a lot with its ingredient links
func (s *LotService) GetByID(ctx context.Context, id uuid.UUID) (*LotResponse, error) {
	lot, err := s.lotRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToLotResponse(lot)
	return &response, nil
}

// ListUnsold lists lots that have not been sold, oldest manufacture
// date first
func (s *LotService) ListUnsold(ctx context.Context) ([]LotResponse, error) {
	lots, err := s.lotRepo.ListUnsold(ctx)
	if err != nil {
		return nil, err
	}
	return ToLotResponses(lots), nil
}
