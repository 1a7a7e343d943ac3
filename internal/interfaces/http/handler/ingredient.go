package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pantryapp "github.com/sudarsanyes/axolotl-kitchen/internal/application/pantry"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// IngredientHandler handles pantry ingredient API endpoints
type IngredientHandler struct {
	BaseHandler
	ingredientService *pantryapp.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler
func NewIngredientHandler(base BaseHandler, ingredientService *pantryapp.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		BaseHandler:       base,
		ingredientService: ingredientService,
	}
}

// StockIngredientRequest represents a request to stock a purchased ingredient
type StockIngredientRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200" example:"All-purpose flour"`
	Brand       string `json:"brand" binding:"required,min=1,max=200" example:"Pillsbury"`
	Supplier    string `json:"supplier" binding:"required,min=1,max=200" example:"Metro Cash and Carry"`
	SupplierLot string `json:"lot" binding:"required,min=1,max=100" example:"PB-2024-1187"`
	Notes       string `json:"notes" binding:"max=1000" example:"Keep refrigerated after opening"`
	// Zero is a valid printed price, so the field is a pointer to tell
	// an explicit 0 apart from an absent field.
	MRP       *float64 `json:"mrp" binding:"required,gte=0" example:"58.00"`
	ExpiresOn string   `json:"expires_on" binding:"required,ymd" example:"2025-03-15"`
}

// Stock records a newly purchased ingredient in the pantry
func (h *IngredientHandler) Stock(c *gin.Context) {
	var req StockIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expiresOn, err := shared.ParseDate(req.ExpiresOn)
	if err != nil {
		h.BadRequest(c, "Invalid expires_on date, expected YYYY-MM-DD")
		return
	}

	appReq := pantryapp.StockIngredientRequest{
		Name:        req.Name,
		Brand:       req.Brand,
		Supplier:    req.Supplier,
		SupplierLot: req.SupplierLot,
		Notes:       req.Notes,
		MRP:         decimal.NewFromFloat(*req.MRP),
		ExpiresOn:   expiresOn,
	}

	ingredient, err := h.ingredientService.Stock(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ingredient)
}

// GetByID retrieves a single ingredient
func (h *IngredientHandler) GetByID(c *gin.Context) {
	ingredientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ingredient ID format")
		return
	}

	ingredient, err := h.ingredientService.GetByID(c.Request.Context(), ingredientID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ingredient)
}

// ListAvailable lists ingredients usable for production. An optional
// as_of query parameter (YYYY-MM-DD) overrides today's date.
func (h *IngredientHandler) ListAvailable(c *gin.Context) {
	asOf, ok := h.parseAsOf(c)
	if !ok {
		return
	}

	ingredients, err := h.ingredientService.ListAvailable(c.Request.Context(), asOf)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ingredients)
}

// ListUnavailable lists exhausted or expired ingredients
func (h *IngredientHandler) ListUnavailable(c *gin.Context) {
	asOf, ok := h.parseAsOf(c)
	if !ok {
		return
	}

	ingredients, err := h.ingredientService.ListUnavailable(c.Request.Context(), asOf)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ingredients)
}

// MarkExhausted flags an ingredient as used up
func (h *IngredientHandler) MarkExhausted(c *gin.Context) {
	ingredientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ingredient ID format")
		return
	}

	if err := h.ingredientService.MarkExhausted(c.Request.Context(), ingredientID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *IngredientHandler) parseAsOf(c *gin.Context) (asOf time.Time, ok bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Time{}, true
	}
	parsed, err := shared.ParseDate(raw)
	if err != nil {
		h.BadRequest(c, "Invalid as_of date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}

// RegisterRoutes registers ingredient routes on the given router group
func (h *IngredientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ingredients := rg.Group("/ingredients")
	{
		ingredients.POST("", h.Stock)
		ingredients.GET("/available", h.ListAvailable)
		ingredients.GET("/unavailable", h.ListUnavailable)
		ingredients.GET("/:id", h.GetByID)
		ingredients.POST("/:id/exhaust", h.MarkExhausted)
	}
}
