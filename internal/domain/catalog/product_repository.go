package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
)

// ProductRepository stores products. Listing filters understand
// "supplier_id", "min_price" and "max_price".
type ProductRepository interface {
	shared.Repository[Product]

	// ExistsByID lets sales check a product reference without loading it
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
