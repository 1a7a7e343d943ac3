package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/production"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// ProductionLotModel is the persistence model for the ProductionLot domain entity.
type ProductionLotModel struct {
	BaseModel
	LotCode        string               `gorm:"type:varchar(50);not null;uniqueIndex"`
	ProductName    string               `gorm:"type:varchar(200);not null"`
	ManufacturedOn time.Time            `gorm:"type:date;not null;index"`
	ExpiresOn      time.Time            `gorm:"type:date;not null"`
	Ingredients    []LotIngredientModel `gorm:"foreignKey:ProductLotID"`
}

// TableName returns the table name for GORM
func (ProductionLotModel) TableName() string {
	return "production_lots"
}

// Validate rejects rows that violate the ledger's integrity rules.
func (m *ProductionLotModel) Validate() error {
	if m.LotCode == "" {
		return errors.New("production lot row has empty lot_code")
	}
	if m.ManufacturedOn.IsZero() || m.ExpiresOn.IsZero() {
		return errors.New("production lot row has zero date")
	}
	return nil
}

// ToDomain converts the persistence model to a domain ProductionLot entity.
func (m *ProductionLotModel) ToDomain() *production.ProductionLot {
	ingredients := make([]production.LotIngredient, len(m.Ingredients))
	for idx := range m.Ingredients {
		ingredients[idx] = m.Ingredients[idx].ToDomain()
	}
	return &production.ProductionLot{
		BaseEntity:     m.BaseModel.ToDomain(),
		LotCode:        m.LotCode,
		ProductName:    m.ProductName,
		ManufacturedOn: shared.Date(m.ManufacturedOn),
		ExpiresOn:      shared.Date(m.ExpiresOn),
		Ingredients:    ingredients,
	}
}

// FromDomain populates the persistence model from a domain ProductionLot entity.
func (m *ProductionLotModel) FromDomain(l *production.ProductionLot) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.LotCode = l.LotCode
	m.ProductName = l.ProductName
	m.ManufacturedOn = l.ManufacturedOn
	m.ExpiresOn = l.ExpiresOn
	m.Ingredients = make([]LotIngredientModel, len(l.Ingredients))
	for idx := range l.Ingredients {
		m.Ingredients[idx].FromDomain(l.Ingredients[idx])
	}
}

// ProductionLotModelFromDomain creates a new persistence model from a domain ProductionLot entity.
func ProductionLotModelFromDomain(l *production.ProductionLot) *ProductionLotModel {
	m := &ProductionLotModel{}
	m.FromDomain(l)
	return m
}

// LotIngredientModel is the persistence model for a lot's ingredient link.
type LotIngredientModel struct {
	ProductLotID uuid.UUID        `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID        `gorm:"type:uuid;primaryKey"`
	QuantityUsed *decimal.Decimal `gorm:"type:decimal(18,4)"`
}

// TableName returns the table name for GORM
func (LotIngredientModel) TableName() string {
	return "lot_ingredients"
}

// ToDomain converts the persistence model to a domain LotIngredient.
func (m *LotIngredientModel) ToDomain() production.LotIngredient {
	return production.LotIngredient{
		ProductLotID: m.ProductLotID,
		IngredientID: m.IngredientID,
		QuantityUsed: m.QuantityUsed,
	}
}

// FromDomain populates the persistence model from a domain LotIngredient.
func (m *LotIngredientModel) FromDomain(l production.LotIngredient) {
	m.ProductLotID = l.ProductLotID
	m.IngredientID = l.IngredientID
	m.QuantityUsed = l.QuantityUsed
}

// LotCodeSequenceModel backs the per-day lot code counter. One row per
// manufacture date; the counter only ever grows.
type LotCodeSequenceModel struct {
	CodeDate time.Time `gorm:"type:date;primaryKey;column:code_date"`
	Counter  int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (LotCodeSequenceModel) TableName() string {
	return "lot_code_sequences"
}
