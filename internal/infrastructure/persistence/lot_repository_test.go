package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/production"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
	"gorm.io/gorm"
)

func createTestLot(t *testing.T, repo *GormProductionLotRepository, code string, manufacturedOn time.Time) *production.ProductionLot {
	t.Helper()
	lot, err := production.NewProductionLot(code, "Sables", manufacturedOn, 21,
		[]production.LotIngredient{
			{IngredientID: uuid.New()},
			{IngredientID: uuid.New()},
		})
	require.NoError(t, err)
	require.NoError(t, repo.CreateWithLinks(context.Background(), lot))
	return lot
}

func TestGormProductionLotRepository_CreateWithLinksAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductionLotRepository(db)
	ctx := context.Background()

	manufactured := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	lot := createTestLot(t, repo, "LC-20250301-001", manufactured)

	found, err := repo.FindByID(ctx, lot.ID)
	require.NoError(t, err)
	assert.Equal(t, "LC-20250301-001", found.LotCode)
	assert.Equal(t, "Sables", found.ProductName)
	assert.True(t, found.ManufacturedOn.Equal(manufactured))
	assert.True(t, found.ExpiresOn.Equal(manufactured.AddDate(0, 0, 21)))
	require.Len(t, found.Ingredients, 2)
	for _, link := range found.Ingredients {
		assert.Equal(t, lot.ID, link.ProductLotID)
	}
}

func TestGormProductionLotRepository_FindByID_NotFound(t *testing.T) {
	repo := NewGormProductionLotRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductionLotRepository_DuplicateLotCodeRejected(t *testing.T) {
	repo := NewGormProductionLotRepository(newTestDB(t))

	manufactured := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	createTestLot(t, repo, "LC-20250301-001", manufactured)

	dup, err := production.NewProductionLot("LC-20250301-001", "Sables", manufactured, 21,
		[]production.LotIngredient{{IngredientID: uuid.New()}})
	require.NoError(t, err)

	err = repo.CreateWithLinks(context.Background(), dup)
	assert.ErrorIs(t, err, shared.ErrStoreWriteFailed)
}

func TestGormProductionLotRepository_ListUnsold(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductionLotRepository(db)
	saleRepo := NewGormSaleRepository(db)
	ctx := context.Background()

	older := createTestLot(t, repo, "LC-20250301-001", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	newer := createTestLot(t, repo, "LC-20250302-001", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))
	sold := createTestLot(t, repo, "LC-20250302-002", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))

	sale, err := sales.NewSale(sold.ID, "Alice", decimal.NewFromInt(250), time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, saleRepo.Create(ctx, sale))

	unsold, err := repo.ListUnsold(ctx)
	require.NoError(t, err)
	require.Len(t, unsold, 2)
	assert.Equal(t, older.ID, unsold[0].ID)
	assert.Equal(t, newer.ID, unsold[1].ID)
	require.Len(t, unsold[0].Ingredients, 2)
}

func TestGormLotCodeAllocator_NextSequence(t *testing.T) {
	db := newTestDB(t)
	allocator := NewGormLotCodeAllocator(db)
	ctx := context.Background()

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	otherDay := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("sequences start at one and grow per date", func(t *testing.T) {
		for want := int64(1); want <= 3; want++ {
			got, err := allocator.NextSequence(ctx, day)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("dates count independently", func(t *testing.T) {
		got, err := allocator.NextSequence(ctx, otherDay)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
	})

	t.Run("time of day does not change the counter row", func(t *testing.T) {
		got, err := allocator.NextSequence(ctx, day.Add(14*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(4), got)
	})
}

// Raw handle so tests can assert link rows directly.
func countLinkRows(t *testing.T, db *gorm.DB, lotID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table("lot_ingredients").Where("product_lot_id = ?", lotID).Count(&n).Error)
	return n
}

func TestGormProductionLotRepository_LinksPersisted(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductionLotRepository(db)

	lot := createTestLot(t, repo, "LC-20250301-001", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, int64(2), countLinkRows(t, db, lot.ID))
}
