package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// SaleModel is the persistence model for the Sale domain entity.
type SaleModel struct {
	AggregateModel
	SaleDate      time.Time       `gorm:"not null;index"`
	InvoiceNumber string          `gorm:"type:varchar(50)"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity      int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,2);not null"`

	Client  *ClientModel  `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale entity.
// Client and product names are filled when the associations were preloaded.
func (m *SaleModel) ToDomain() *trade.Sale {
	s := &trade.Sale{
		BaseAggregateRoot: m.AggregateRoot(),
		SaleDate:          m.SaleDate,
		InvoiceNumber:     m.InvoiceNumber,
		ClientID:          m.ClientID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		UnitPrice:         m.UnitPrice,
	}
	if m.Client != nil {
		s.ClientName = m.Client.Name
	}
	if m.Product != nil {
		s.ProductName = m.Product.Name
	}
	return s
}

// FromDomain populates the persistence model from a domain Sale entity.
func (m *SaleModel) FromDomain(s *trade.Sale) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.SaleDate = s.SaleDate
	m.InvoiceNumber = s.InvoiceNumber
	m.ClientID = s.ClientID
	m.ProductID = s.ProductID
	m.Quantity = s.Quantity
	m.UnitPrice = s.UnitPrice
}

// SaleModelFromDomain creates a new persistence model from a domain Sale entity.
func SaleModelFromDomain(s *trade.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}
