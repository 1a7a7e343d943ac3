package persistence

import (
	"context"
	"time"

	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLotCodeAllocator implements LotCodeAllocator against the
// lot_code_sequences table. Allocation is a single upsert round-trip,
// so concurrent callers for the same date always receive distinct
// sequence numbers and the counter never moves backwards.
type GormLotCodeAllocator struct {
	db *gorm.DB
}

// NewGormLotCodeAllocator creates a new GormLotCodeAllocator
func NewGormLotCodeAllocator(db *gorm.DB) *GormLotCodeAllocator {
	return &GormLotCodeAllocator{db: db}
}

// NextSequence returns the next sequence number for the given
// manufacture date, starting at 1 for the date's first lot.
func (a *GormLotCodeAllocator) NextSequence(ctx context.Context, manufacturedOn time.Time) (int64, error) {
	var counter int64
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO lot_code_sequences (code_date, counter)
		VALUES (?, 1)
		ON CONFLICT (code_date)
		DO UPDATE SET counter = lot_code_sequences.counter + 1
		RETURNING counter`,
		shared.Date(manufacturedOn),
	).Scan(&counter).Error
	if err != nil {
		return 0, shared.ErrCodeGenerationFailed
	}
	return counter, nil
}
