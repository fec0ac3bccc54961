package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SaleDetail is one row of the per-product or per-client sales listing
type SaleDetail struct {
	SaleID      uuid.UUID
	SaleDate    time.Time
	ProductID   uuid.UUID
	ProductName string
	ClientID    uuid.UUID
	ClientName  string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// SalesSummary aggregates every sale of one product or one client.
// Name is nil when there are no sales.
type SalesSummary struct {
	Name          *string
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
}

// SaleRepository defines the interface for sale persistence and the
// aggregation queries over it
type SaleRepository interface {
	// Create inserts a sale after confirming, in the same transaction, that
	// its client and product exist. Returns ErrReferenceNotFound otherwise.
	Create(ctx context.Context, sale *Sale) error

	// FindByID finds a sale by ID, with client and product names resolved
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAll lists sales. Supported filters: "client_id", "product_id".
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)

	// Count counts sales matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindDetailsByProduct lists the sales of one product ordered by date
	FindDetailsByProduct(ctx context.Context, productID uuid.UUID) ([]SaleDetail, error)

	// FindDetailsByClient lists the sales of one client ordered by date
	FindDetailsByClient(ctx context.Context, clientID uuid.UUID) ([]SaleDetail, error)

	// SummarizeByProduct totals the sales of one product
	SummarizeByProduct(ctx context.Context, productID uuid.UUID) (*SalesSummary, error)

	// SummarizeByClient totals the sales of one client
	SummarizeByClient(ctx context.Context, clientID uuid.UUID) (*SalesSummary, error)
}
