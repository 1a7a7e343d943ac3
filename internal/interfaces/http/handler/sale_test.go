package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	salesapp "github.com/sudarsanyes/axolotl-kitchen/internal/application/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
	"github.com/sudarsanyes/axolotl-kitchen/internal/interfaces/http/dto"
)

type saleTestDeps struct {
	saleRepo *MockSaleRepository
	lotRepo  *MockProductionLotRepository
}

func newSaleTestEngine() (*gin.Engine, saleTestDeps) {
	deps := saleTestDeps{
		saleRepo: new(MockSaleRepository),
		lotRepo:  new(MockProductionLotRepository),
	}
	service := salesapp.NewSalesService(deps.saleRepo, deps.lotRepo)
	return newTestEngine(NewSaleHandler(testBase(), service)), deps
}

func TestSaleHandlerRecord(t *testing.T) {
	engine, deps := newSaleTestEngine()

	lot := testLotFixture(t)
	deps.lotRepo.On("FindByID", mock.Anything, lot.ID).Return(lot, nil)
	deps.saleRepo.On("Create", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)

	body := fmt.Sprintf(`{
		"lot_id": %q,
		"customer": "Asha Rao",
		"selling_price": 450.00,
		"sold_on": "2025-01-10"
	}`, lot.ID)
	w := performRequest(t, engine, http.MethodPost, "/api/v1/sales", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, lot.ID.String(), data["product_lot_id"])
	assert.Equal(t, "Asha Rao", data["customer"])
	assert.Equal(t, "2025-01-10", data["sold_on"])
	deps.saleRepo.AssertExpectations(t)
}

func TestSaleHandlerRecordZeroPrice(t *testing.T) {
	engine, deps := newSaleTestEngine()

	lot := testLotFixture(t)
	deps.lotRepo.On("FindByID", mock.Anything, lot.ID).Return(lot, nil)
	deps.saleRepo.On("Create", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)

	// A giveaway is still a sale: an explicit zero price is accepted.
	body := fmt.Sprintf(`{"lot_id":%q,"customer":"Asha Rao","selling_price":0}`, lot.ID)
	w := performRequest(t, engine, http.MethodPost, "/api/v1/sales", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "0", data["selling_price"])
	deps.saleRepo.AssertExpectations(t)
}

func TestSaleHandlerRecordAlreadySold(t *testing.T) {
	engine, deps := newSaleTestEngine()

	lot := testLotFixture(t)
	deps.lotRepo.On("FindByID", mock.Anything, lot.ID).Return(lot, nil)
	deps.saleRepo.On("Create", mock.Anything, mock.AnythingOfType("*sales.Sale")).
		Return(shared.ErrLotAlreadySold)

	body := fmt.Sprintf(`{"lot_id":%q,"customer":"Asha Rao","selling_price":450}`, lot.ID)
	w := performRequest(t, engine, http.MethodPost, "/api/v1/sales", body)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "LOT_ALREADY_SOLD", resp.Error.Code)
}

func TestSaleHandlerRecordUnknownLot(t *testing.T) {
	engine, deps := newSaleTestEngine()

	id := uuid.New()
	deps.lotRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	body := fmt.Sprintf(`{"lot_id":%q,"customer":"Asha Rao","selling_price":450}`, id)
	w := performRequest(t, engine, http.MethodPost, "/api/v1/sales", body)

	assert.Equal(t, http.StatusNotFound, w.Code)
	deps.saleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaleHandlerRecordValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing customer", body: `{"lot_id":"0b3f6e52-3d6e-4f58-8f0a-6f1f2f9f7f31","selling_price":450}`},
		{name: "bad lot id", body: `{"lot_id":"nope","customer":"Asha","selling_price":450}`},
		{name: "negative price", body: `{"lot_id":"0b3f6e52-3d6e-4f58-8f0a-6f1f2f9f7f31","customer":"Asha","selling_price":-1}`},
		{name: "missing price", body: `{"lot_id":"0b3f6e52-3d6e-4f58-8f0a-6f1f2f9f7f31","customer":"Asha"}`},
		{name: "bad sold_on", body: `{"lot_id":"0b3f6e52-3d6e-4f58-8f0a-6f1f2f9f7f31","customer":"Asha","selling_price":450,"sold_on":"10/01/2025"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, deps := newSaleTestEngine()

			w := performRequest(t, engine, http.MethodPost, "/api/v1/sales", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			deps.lotRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		})
	}
}

func TestSaleHandlerListByDay(t *testing.T) {
	engine, deps := newSaleTestEngine()

	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	sale, err := sales.NewSale(uuid.New(), "Asha Rao", decimal.NewFromInt(450), day)
	require.NoError(t, err)
	deps.saleRepo.On("ListByDay", mock.Anything, day).Return([]sales.Sale{*sale}, nil)

	w := performRequest(t, engine, http.MethodGet, "/api/v1/sales?day=2025-01-10", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp.Data.([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "2025-01-10", first["sold_on"])
}

func TestSaleHandlerListByDayBadDay(t *testing.T) {
	engine, deps := newSaleTestEngine()

	w := performRequest(t, engine, http.MethodGet, "/api/v1/sales?day=yesterday", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	deps.saleRepo.AssertNotCalled(t, "ListByDay", mock.Anything, mock.Anything)
}

func TestSaleHandlerDailyTotal(t *testing.T) {
	engine, deps := newSaleTestEngine()

	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	deps.saleRepo.On("TotalByDay", mock.Anything, day).
		Return(decimal.NewFromInt(550), nil)

	w := performRequest(t, engine, http.MethodGet, "/api/v1/reports/sales-total?day=2025-01-10", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "2025-01-10", data["day"])
	assert.Equal(t, "550", data["total"])
}

func TestSaleHandlerDailyTotalStoreFailure(t *testing.T) {
	engine, deps := newSaleTestEngine()

	deps.saleRepo.On("TotalByDay", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(decimal.Zero, shared.ErrStoreUnavailable)

	w := performRequest(t, engine, http.MethodGet, "/api/v1/reports/sales-total", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
