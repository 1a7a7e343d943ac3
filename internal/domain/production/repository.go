package production

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductionLotRepository defines the interface for lot persistence
type ProductionLotRepository interface {
	// CreateWithLinks inserts the lot row and all of its ingredient
	// links as one atomic unit. A lot without links must never become
	// visible, so a link failure rolls the lot row back.
	CreateWithLinks(ctx context.Context, lot *ProductionLot) error

	// FindByID finds a lot with its ingredient links
	FindByID(ctx context.Context, id uuid.UUID) (*ProductionLot, error)

	// ListUnsold lists lots with no recorded sale, ordered by
	// manufacture date ascending
	ListUnsold(ctx context.Context) ([]ProductionLot, error)
}

// LotCodeAllocator hands out per-date sequence numbers for lot codes.
// Allocation must be a single atomic round-trip against the store;
// concurrent callers for the same date must receive distinct values.
type LotCodeAllocator interface {
	NextSequence(ctx context.Context, manufacturedOn time.Time) (int64, error)
}
