package partner

import (
	"github.com/loja/backend/internal/domain/partner"
	"github.com/loja/backend/tests/testutil"
)

type (
	MockClientRepository   = testutil.MockRepository[partner.Client]
	MockSupplierRepository = testutil.MockRepository[partner.Supplier]
	MockEventPublisher     = testutil.MockEventPublisher
)
