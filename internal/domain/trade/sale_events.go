package trade

import (
	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for Sale
const AggregateTypeSale = "Sale"

// EventTypeSaleRecorded is published after a sale passes reference checks
const EventTypeSaleRecorded = "SaleRecorded"

// SaleRecordedEvent is published when a sale is recorded
type SaleRecordedEvent struct {
	shared.BaseDomainEvent
	SaleID    uuid.UUID       `json:"sale_id"`
	ClientID  uuid.UUID       `json:"client_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// NewSaleRecordedEvent creates a new SaleRecordedEvent
func NewSaleRecordedEvent(sale *Sale) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleRecorded, AggregateTypeSale, sale.ID),
		SaleID:          sale.ID,
		ClientID:        sale.ClientID,
		ProductID:       sale.ProductID,
		Quantity:        sale.Quantity,
		UnitPrice:       sale.UnitPrice,
		Total:           sale.Total(),
	}
}
