package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	salesapp "github.com/sudarsanyes/axolotl-kitchen/internal/application/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// SaleHandler handles sale and revenue report API endpoints
type SaleHandler struct {
	BaseHandler
	salesService *salesapp.SalesService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(base BaseHandler, salesService *salesapp.SalesService) *SaleHandler {
	return &SaleHandler{
		BaseHandler:  base,
		salesService: salesService,
	}
}

// RecordSaleRequest represents a request to book the sale of a lot
type RecordSaleRequest struct {
	LotID    string `json:"lot_id" binding:"required,uuid" example:"0b3f6e52-3d6e-4f58-8f0a-6f1f2f9f7f31"`
	Customer string `json:"customer" binding:"required,min=1,max=200" example:"Asha Rao"`
	// Zero is a valid price (giveaways, write-offs), so the field is a
	// pointer to tell an explicit 0 apart from an absent field.
	SellingPrice *float64 `json:"selling_price" binding:"required,gte=0" example:"450.00"`
	// SoldOn defaults to today when omitted.
	SoldOn string `json:"sold_on" binding:"omitempty,ymd" example:"2025-01-10"`
}

// Record books the sale of a production lot. A lot can be sold exactly
// once; a second attempt returns a conflict.
func (h *SaleHandler) Record(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	lotID, err := uuid.Parse(req.LotID)
	if err != nil {
		h.BadRequest(c, "Invalid lot ID format")
		return
	}

	var soldOn time.Time
	if req.SoldOn != "" {
		parsed, err := shared.ParseDate(req.SoldOn)
		if err != nil {
			h.BadRequest(c, "Invalid sold_on date, expected YYYY-MM-DD")
			return
		}
		soldOn = parsed
	}

	appReq := salesapp.RecordSaleRequest{
		LotID:        lotID,
		Customer:     req.Customer,
		SellingPrice: decimal.NewFromFloat(*req.SellingPrice),
		SoldOn:       soldOn,
	}

	sale, err := h.salesService.RecordSale(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sale)
}

// ListByDay lists the sales booked on one day. An optional day query
// parameter (YYYY-MM-DD) overrides today's date.
func (h *SaleHandler) ListByDay(c *gin.Context) {
	day, ok := h.parseDay(c)
	if !ok {
		return
	}

	sales, err := h.salesService.ListByDay(c.Request.Context(), day)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sales)
}

// DailyTotal reports the revenue total for one day
func (h *SaleHandler) DailyTotal(c *gin.Context) {
	day, ok := h.parseDay(c)
	if !ok {
		return
	}

	total, err := h.salesService.TotalSales(c.Request.Context(), day)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, total)
}

func (h *SaleHandler) parseDay(c *gin.Context) (day time.Time, ok bool) {
	raw := c.Query("day")
	if raw == "" {
		return time.Time{}, true
	}
	parsed, err := shared.ParseDate(raw)
	if err != nil {
		h.BadRequest(c, "Invalid day, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}

// RegisterRoutes registers sale and report routes on the given router group
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Record)
		sales.GET("", h.ListByDay)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/sales-total", h.DailyTotal)
	}
}
