package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ErrReferenceNotFound is returned when a sale points at a client or product
// that does not exist
var ErrReferenceNotFound = shared.NewDomainError("REFERENCE_NOT_FOUND", "Client or product not found")

// Sale records one product sold to one client.
// UnitPrice is a snapshot taken when the sale is recorded and is never
// re-read from the product afterwards.
type Sale struct {
	shared.BaseAggregateRoot
	SaleDate      time.Time
	InvoiceNumber string
	ClientID      uuid.UUID
	ProductID     uuid.UUID
	Quantity      int
	UnitPrice     decimal.Decimal

	// Denormalised names resolved when the sale is recorded or loaded.
	// They are not part of the stored row.
	ClientName  string
	ProductName string
}

// NewSale creates a new sale. A zero saleDate means "now".
func NewSale(clientID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal, saleDate time.Time, invoiceNumber string) (*Sale, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
	}
	if err := shared.ValidateMoney("Unit price", unitPrice); err != nil {
		return nil, err
	}
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if len(invoiceNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot exceed 50 characters")
	}
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	return &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SaleDate:          saleDate,
		InvoiceNumber:     invoiceNumber,
		ClientID:          clientID,
		ProductID:         productID,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
	}, nil
}

// AttachReferences stores the resolved client and product names and emits
// the SaleRecorded event. It is called once both references are known to exist.
func (s *Sale) AttachReferences(clientName, productName string) {
	s.ClientName = clientName
	s.ProductName = productName
	s.AddDomainEvent(NewSaleRecordedEvent(s))
}

// Total returns UnitPrice x Quantity
func (s *Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
