package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	productionapp "github.com/sudarsanyes/axolotl-kitchen/internal/application/production"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// LotHandler handles production lot API endpoints
type LotHandler struct {
	BaseHandler
	lotService *productionapp.LotService
}

// NewLotHandler creates a new LotHandler
func NewLotHandler(base BaseHandler, lotService *productionapp.LotService) *LotHandler {
	return &LotHandler{
		BaseHandler: base,
		lotService:  lotService,
	}
}

// CreateLotRequest represents a request to compose a new production lot
type CreateLotRequest struct {
	ProductName string `json:"product_name" binding:"required,min=1,max=200" example:"Sables"`
	// ManufacturedOn defaults to today when omitted.
	ManufacturedOn string               `json:"manufactured_on" binding:"omitempty,ymd" example:"2024-12-01"`
	Ingredients    []LotIngredientEntry `json:"ingredients" binding:"required,min=1,dive"`
}

// LotIngredientEntry selects one pantry ingredient for the lot
type LotIngredientEntry struct {
	IngredientID string   `json:"ingredient_id" binding:"required,uuid" example:"5f0c8a6e-96a4-4f2f-a0ce-1d6c8f9b1f2d"`
	QuantityUsed *float64 `json:"quantity_used" binding:"omitempty,gt=0" example:"250"`
}

// Create composes a new production lot from available ingredients
func (h *LotHandler) Create(c *gin.Context) {
	var req CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var manufacturedOn time.Time
	if req.ManufacturedOn != "" {
		parsed, err := shared.ParseDate(req.ManufacturedOn)
		if err != nil {
			h.BadRequest(c, "Invalid manufactured_on date, expected YYYY-MM-DD")
			return
		}
		manufacturedOn = parsed
	}

	appReq := productionapp.CreateLotRequest{
		ProductName:    req.ProductName,
		ManufacturedOn: manufacturedOn,
		Ingredients:    make([]productionapp.LotIngredientInput, len(req.Ingredients)),
	}
	for i, entry := range req.Ingredients {
		id, err := uuid.Parse(entry.IngredientID)
		if err != nil {
			h.BadRequest(c, "Invalid ingredient ID format")
			return
		}
		appReq.Ingredients[i].IngredientID = id
		if entry.QuantityUsed != nil {
			q := decimal.NewFromFloat(*entry.QuantityUsed)
			appReq.Ingredients[i].QuantityUsed = &q
		}
	}

	lot, err := h.lotService.CreateLot(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, lot)
}

// GetByID retrieves a lot with its ingredient links
func (h *LotHandler) GetByID(c *gin.Context) {
	lotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lot ID format")
		return
	}

	lot, err := h.lotService.GetByID(c.Request.Context(), lotID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lot)
}

// ListUnsold lists lots still waiting for a buyer, oldest first
func (h *LotHandler) ListUnsold(c *gin.Context) {
	lots, err := h.lotService.ListUnsold(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, lots)
}

// RegisterRoutes registers production lot routes on the given router group
func (h *LotHandler) RegisterRoutes(rg *gin.RouterGroup) {
	lots := rg.Group("/lots")
	{
		lots.POST("", h.Create)
		lots.GET("/unsold", h.ListUnsold)
		lots.GET("/:id", h.GetByID)
	}
}
