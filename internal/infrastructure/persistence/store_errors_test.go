package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB creates a gorm handle backed by sqlmock for driving
// failure paths that an in-memory database cannot produce.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestStoreErrorMapping(t *testing.T) {
	ctx := context.Background()
	connRefused := errors.New("connection refused")

	t.Run("ingredient read failure maps to STORE_UNAVAILABLE", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormIngredientRepository(gormDB)

		mock.ExpectQuery(`SELECT .* FROM "ingredients"`).WillReturnError(connRefused)

		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
	})

	t.Run("ingredient list failure maps to STORE_UNAVAILABLE", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormIngredientRepository(gormDB)

		mock.ExpectQuery(`SELECT .* FROM "ingredients"`).WillReturnError(connRefused)

		_, err := repo.ListAvailable(ctx, time.Now())
		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
	})

	t.Run("exhaustion write failure maps to STORE_WRITE_FAILED", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormIngredientRepository(gormDB)

		mock.ExpectExec(`UPDATE "ingredients"`).WillReturnError(connRefused)

		err := repo.MarkExhausted(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrStoreWriteFailed)
	})

	t.Run("lot read failure maps to STORE_UNAVAILABLE", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductionLotRepository(gormDB)

		mock.ExpectQuery(`SELECT .* FROM "production_lots"`).WillReturnError(connRefused)

		_, err := repo.ListUnsold(ctx)
		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
	})

	t.Run("allocator failure maps to CODE_GENERATION_FAILED", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		allocator := NewGormLotCodeAllocator(gormDB)

		mock.ExpectQuery(`INSERT INTO lot_code_sequences`).WillReturnError(connRefused)

		_, err := allocator.NextSequence(ctx, time.Now())
		assert.ErrorIs(t, err, shared.ErrCodeGenerationFailed)
	})

	t.Run("sale read failure maps to STORE_UNAVAILABLE", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSaleRepository(gormDB)

		mock.ExpectQuery(`SELECT .* FROM "sales"`).WillReturnError(connRefused)

		_, err := repo.TotalByDay(ctx, time.Now())
		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
	})
}
