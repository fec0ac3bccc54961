package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
)

// ClientRepository stores clients. Deleting a client that sales still
// reference fails with shared.ErrReferenceInUse.
type ClientRepository interface {
	shared.Repository[Client]
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// SupplierRepository stores suppliers. Deleting one clears the supplier
// link of its products.
type SupplierRepository interface {
	shared.Repository[Supplier]
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
