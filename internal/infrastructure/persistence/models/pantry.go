package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/pantry"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// IngredientModel is the persistence model for the Ingredient domain entity.
type IngredientModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(200);not null"`
	Brand       string          `gorm:"type:varchar(100)"`
	Supplier    string          `gorm:"type:varchar(200)"`
	SupplierLot string          `gorm:"type:varchar(100);not null"`
	Notes       string          `gorm:"type:text"`
	MRP         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ExpiresOn   time.Time       `gorm:"type:date;not null;index"`
	IsExhausted bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (IngredientModel) TableName() string {
	return "ingredients"
}

// Validate rejects rows that violate the ledger's integrity rules.
// Such rows cannot come from this writer, so they never reach the core.
func (m *IngredientModel) Validate() error {
	if m.MRP.IsNegative() {
		return errors.New("ingredient row has negative mrp")
	}
	if m.ExpiresOn.IsZero() {
		return errors.New("ingredient row has zero expires_on")
	}
	return nil
}

// ToDomain converts the persistence model to a domain Ingredient entity.
// Dates read back from the store are re-normalized to UTC midnight.
func (m *IngredientModel) ToDomain() *pantry.Ingredient {
	return &pantry.Ingredient{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Brand:       m.Brand,
		Supplier:    m.Supplier,
		SupplierLot: m.SupplierLot,
		Notes:       m.Notes,
		MRP:         m.MRP,
		ExpiresOn:   shared.Date(m.ExpiresOn),
		IsExhausted: m.IsExhausted,
	}
}

// FromDomain populates the persistence model from a domain Ingredient entity.
func (m *IngredientModel) FromDomain(i *pantry.Ingredient) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.Name = i.Name
	m.Brand = i.Brand
	m.Supplier = i.Supplier
	m.SupplierLot = i.SupplierLot
	m.Notes = i.Notes
	m.MRP = i.MRP
	m.ExpiresOn = i.ExpiresOn
	m.IsExhausted = i.IsExhausted
}

// IngredientModelFromDomain creates a new persistence model from a domain Ingredient entity.
func IngredientModelFromDomain(i *pantry.Ingredient) *IngredientModel {
	m := &IngredientModel{}
	m.FromDomain(i)
	return m
}
