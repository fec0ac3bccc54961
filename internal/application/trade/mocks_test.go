package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/catalog"
	"github.com/loja/backend/internal/domain/partner"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/domain/trade"
	"github.com/loja/backend/tests/testutil"
	"github.com/stretchr/testify/mock"
)

// MockSaleRepository stands in for the gorm sale store.
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Sale, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) FindDetailsByProduct(ctx context.Context, productID uuid.UUID) ([]trade.SaleDetail, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]trade.SaleDetail), args.Error(1)
}

func (m *MockSaleRepository) FindDetailsByClient(ctx context.Context, clientID uuid.UUID) ([]trade.SaleDetail, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]trade.SaleDetail), args.Error(1)
}

func (m *MockSaleRepository) SummarizeByProduct(ctx context.Context, productID uuid.UUID) (*trade.SalesSummary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesSummary), args.Error(1)
}

func (m *MockSaleRepository) SummarizeByClient(ctx context.Context, clientID uuid.UUID) (*trade.SalesSummary, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesSummary), args.Error(1)
}

type (
	MockProductRepository = testutil.MockRepository[catalog.Product]
	MockClientRepository  = testutil.MockRepository[partner.Client]
	MockEventPublisher    = testutil.MockEventPublisher
)
