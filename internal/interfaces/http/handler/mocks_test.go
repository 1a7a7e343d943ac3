package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/pantry"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/production"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// newTestEngine mounts a handler's routes the way the server does
func newTestEngine(registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}) *gin.Engine {
	engine := gin.New()
	registrar.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func performRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func testBase() BaseHandler {
	return NewBaseHandler(zap.NewNop())
}

func decimalOne() decimal.Decimal {
	return decimal.NewFromInt(1)
}

func testLotFixture(t *testing.T) *production.ProductionLot {
	t.Helper()
	manufactured := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	lot, err := production.NewProductionLot("LC-20241201-001", "Sables", manufactured, 21,
		[]production.LotIngredient{{IngredientID: uuid.New()}})
	require.NoError(t, err)
	return lot
}

// MockIngredientRepository is a testify mock for pantry.IngredientRepository
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Save(ctx context.Context, ingredient *pantry.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pantry.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]pantry.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pantry.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) ListAvailable(ctx context.Context, asOf time.Time) ([]pantry.Ingredient, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pantry.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) ListUnavailable(ctx context.Context, asOf time.Time) ([]pantry.Ingredient, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pantry.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) MarkExhausted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductionLotRepository is a testify mock for production.ProductionLotRepository
type MockProductionLotRepository struct {
	mock.Mock
}

func (m *MockProductionLotRepository) CreateWithLinks(ctx context.Context, lot *production.ProductionLot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockProductionLotRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.ProductionLot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ProductionLot), args.Error(1)
}

func (m *MockProductionLotRepository) ListUnsold(ctx context.Context) ([]production.ProductionLot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]production.ProductionLot), args.Error(1)
}

// MockLotCodeAllocator is a testify mock for production.LotCodeAllocator
type MockLotCodeAllocator struct {
	mock.Mock
}

func (m *MockLotCodeAllocator) NextSequence(ctx context.Context, manufacturedOn time.Time) (int64, error) {
	args := m.Called(ctx, manufacturedOn)
	return args.Get(0).(int64), args.Error(1)
}

// MockSaleRepository is a testify mock for sales.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) ListByDay(ctx context.Context, day time.Time) ([]sales.Sale, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) TotalByDay(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
