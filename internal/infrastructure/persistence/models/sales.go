package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/domain/shared"
)

// SaleModel is the persistence model for the Sale domain entity.
// The unique index on ProductLotID is the authority for
// one-sale-per-lot.
type SaleModel struct {
	BaseModel
	ProductLotID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Customer     string          `gorm:"type:varchar(200);not null"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SoldOn       time.Time       `gorm:"type:date;not null;index"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// Validate rejects rows that violate the ledger's integrity rules.
func (m *SaleModel) Validate() error {
	if m.ProductLotID == uuid.Nil {
		return errors.New("sale row has nil product_lot_id")
	}
	if m.SellingPrice.IsNegative() {
		return errors.New("sale row has negative selling_price")
	}
	if m.SoldOn.IsZero() {
		return errors.New("sale row has zero sold_on")
	}
	return nil
}

// ToDomain converts the persistence model to a domain Sale entity.
func (m *SaleModel) ToDomain() *sales.Sale {
	return &sales.Sale{
		BaseEntity:   m.BaseModel.ToDomain(),
		ProductLotID: m.ProductLotID,
		Customer:     m.Customer,
		SellingPrice: m.SellingPrice,
		SoldOn:       shared.Date(m.SoldOn),
	}
}

// FromDomain populates the persistence model from a domain Sale entity.
func (m *SaleModel) FromDomain(s *sales.Sale) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.ProductLotID = s.ProductLotID
	m.Customer = s.Customer
	m.SellingPrice = s.SellingPrice
	m.SoldOn = s.SoldOn
}

// SaleModelFromDomain creates a new persistence model from a domain Sale entity.
func SaleModelFromDomain(s *sales.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}
