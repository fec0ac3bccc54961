package catalog

import (
	"github.com/loja/backend/internal/domain/catalog"
	"github.com/loja/backend/internal/domain/partner"
	"github.com/loja/backend/tests/testutil"
)

type (
	MockProductRepository  = testutil.MockRepository[catalog.Product]
	MockSupplierRepository = testutil.MockRepository[partner.Supplier]
	MockEventPublisher     = testutil.MockEventPublisher
)
