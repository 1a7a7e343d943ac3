package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema. The pool
// is pinned to a single connection so every query sees the same
// in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.IngredientModel{},
		&models.ProductionLotModel{},
		&models.LotIngredientModel{},
		&models.SaleModel{},
		&models.LotCodeSequenceModel{},
	))

	return db
}
