package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/domain/trade"
	"github.com/loja/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	repo     *GormSaleRepository
	products *GormProductRepository
	clients  *GormClientRepository
}

func newSaleFixture(t *testing.T) *saleFixture {
	db := setupTestDB(t)
	return &saleFixture{
		repo:     NewGormSaleRepository(db),
		products: NewGormProductRepository(db),
		clients:  NewGormClientRepository(db),
	}
}

func (f *saleFixture) record(t *testing.T, clientID, productID uuid.UUID, qty int, price int64, at time.Time) *trade.Sale {
	t.Helper()
	sale, err := trade.NewSale(clientID, productID, qty, decimal.NewFromInt(price), at, "")
	require.NoError(t, err)
	require.NoError(t, f.repo.Create(context.Background(), sale))
	return sale
}

func TestGormSaleRepository_Create(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	client := createTestClient(t, f.clients, "Joana")
	product := createTestProduct(t, f.products, "Mochila", 120)

	at := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	sale, err := trade.NewSale(client.ID, product.ID, 2, decimal.RequireFromString("99.90"), at, "NF-0001")
	require.NoError(t, err)
	require.NoError(t, f.repo.Create(ctx, sale))

	found, err := f.repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ClientID)
	assert.Equal(t, product.ID, found.ProductID)
	assert.Equal(t, "Joana", found.ClientName)
	assert.Equal(t, "Mochila", found.ProductName)
	assert.Equal(t, 2, found.Quantity)
	assert.Equal(t, "NF-0001", found.InvoiceNumber)
	assert.True(t, decimal.RequireFromString("99.90").Equal(found.UnitPrice))
	assert.True(t, at.Equal(found.SaleDate))
}

func TestGormSaleRepository_Create_MissingReference(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	client := createTestClient(t, f.clients, "Joana")
	product := createTestProduct(t, f.products, "Mochila", 120)

	tests := []struct {
		name      string
		clientID  uuid.UUID
		productID uuid.UUID
	}{
		{"missing product", client.ID, uuid.New()},
		{"missing client", uuid.New(), product.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale, err := trade.NewSale(tt.clientID, tt.productID, 1, decimal.NewFromInt(10), time.Time{}, "")
			require.NoError(t, err)

			err = f.repo.Create(ctx, sale)
			assert.ErrorIs(t, err, trade.ErrReferenceNotFound)

			count, err := f.repo.Count(ctx, shared.Filter{})
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestGormSaleRepository_FindAll(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	ana := createTestClient(t, f.clients, "Ana")
	bia := createTestClient(t, f.clients, "Bia")
	product := createTestProduct(t, f.products, "Estojo", 20)

	day := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	f.record(t, ana.ID, product.ID, 1, 20, day.AddDate(0, 0, 2))
	f.record(t, bia.ID, product.ID, 3, 18, day)
	f.record(t, ana.ID, product.ID, 2, 20, day.AddDate(0, 0, 1))

	sales, err := f.repo.FindAll(ctx, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, "Bia", sales[0].ClientName)
	assert.Equal(t, "Estojo", sales[0].ProductName)
	assert.Equal(t, 1, sales[2].Quantity)

	byClient := shared.Filter{Filters: map[string]interface{}{"client_id": ana.ID}}
	sales, err = f.repo.FindAll(ctx, byClient)
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	count, err := f.repo.Count(ctx, byClient)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormSaleRepository_FindByID_NotFound(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormSaleRepository_Details(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	ana := createTestClient(t, f.clients, "Ana")
	bia := createTestClient(t, f.clients, "Bia")
	caneta := createTestProduct(t, f.products, "Caneta", 3)
	lapis := createTestProduct(t, f.products, "Lapis", 1)

	day := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	late := f.record(t, ana.ID, caneta.ID, 4, 3, day.AddDate(0, 1, 0))
	early := f.record(t, bia.ID, caneta.ID, 1, 3, day)
	f.record(t, ana.ID, lapis.ID, 10, 1, day)

	t.Run("by product ordered by date", func(t *testing.T) {
		details, err := f.repo.FindDetailsByProduct(ctx, caneta.ID)
		require.NoError(t, err)
		require.Len(t, details, 2)

		assert.Equal(t, early.ID, details[0].SaleID)
		assert.Equal(t, "Bia", details[0].ClientName)
		assert.Equal(t, "Caneta", details[0].ProductName)
		assert.Equal(t, 1, details[0].Quantity)

		assert.Equal(t, late.ID, details[1].SaleID)
		assert.Equal(t, "Ana", details[1].ClientName)
		assert.True(t, decimal.NewFromInt(3).Equal(details[1].UnitPrice))
	})

	t.Run("by client", func(t *testing.T) {
		details, err := f.repo.FindDetailsByClient(ctx, ana.ID)
		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, "Lapis", details[0].ProductName)
		assert.Equal(t, "Caneta", details[1].ProductName)
	})

	t.Run("no sales is an empty list", func(t *testing.T) {
		details, err := f.repo.FindDetailsByProduct(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, details)
	})
}

func TestGormSaleRepository_Summaries(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	ana := createTestClient(t, f.clients, "Ana")
	bia := createTestClient(t, f.clients, "Bia")
	product := createTestProduct(t, f.products, "Agenda", 10)
	other := createTestProduct(t, f.products, "Marca-texto", 7)

	f.record(t, ana.ID, product.ID, 2, 10, time.Time{})
	f.record(t, bia.ID, product.ID, 3, 10, time.Time{})
	f.record(t, ana.ID, other.ID, 1, 7, time.Time{})

	t.Run("by product", func(t *testing.T) {
		summary, err := f.repo.SummarizeByProduct(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, summary.Name)
		assert.Equal(t, "Agenda", *summary.Name)
		assert.Equal(t, int64(5), summary.TotalQuantity)
		assert.True(t, decimal.NewFromInt(50).Equal(summary.TotalRevenue), summary.TotalRevenue.String())
	})

	t.Run("by client", func(t *testing.T) {
		summary, err := f.repo.SummarizeByClient(ctx, ana.ID)
		require.NoError(t, err)
		require.NotNil(t, summary.Name)
		assert.Equal(t, "Ana", *summary.Name)
		assert.Equal(t, int64(3), summary.TotalQuantity)
		assert.True(t, decimal.NewFromInt(27).Equal(summary.TotalRevenue), summary.TotalRevenue.String())
	})

	t.Run("no sales", func(t *testing.T) {
		summary, err := f.repo.SummarizeByProduct(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, summary.Name)
		assert.Zero(t, summary.TotalQuantity)
		assert.True(t, summary.TotalRevenue.IsZero())
	})
}

func TestGormSaleRepository_Summaries_FractionalPrices(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()
	ana := createTestClient(t, f.clients, "Ana")
	product := createTestProduct(t, f.products, "Caderno", 10)

	for _, s := range []struct {
		qty   int
		price string
	}{{3, "10.10"}, {1, "0.10"}, {1, "0.20"}} {
		sale, err := trade.NewSale(ana.ID, product.ID, s.qty, decimal.RequireFromString(s.price), time.Time{}, "")
		require.NoError(t, err)
		require.NoError(t, f.repo.Create(ctx, sale))
	}

	want := decimal.RequireFromString("30.60")

	byProduct, err := f.repo.SummarizeByProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), byProduct.TotalQuantity)
	assert.True(t, want.Equal(byProduct.TotalRevenue), byProduct.TotalRevenue.String())
	assert.Equal(t, "30.6", byProduct.TotalRevenue.String())

	byClient, err := f.repo.SummarizeByClient(ctx, ana.ID)
	require.NoError(t, err)
	assert.True(t, want.Equal(byClient.TotalRevenue), byClient.TotalRevenue.String())

	details, err := f.repo.FindDetailsByProduct(ctx, product.ID)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, d := range details {
		sum = sum.Add(d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))))
	}
	assert.True(t, want.Equal(sum), sum.String())
}

func TestGormSaleRepository_DeleteReferencedProduct(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "loja.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, AutoMigrate(db.DB))

	ctx := context.Background()
	products := NewGormProductRepository(db.DB)
	clients := NewGormClientRepository(db.DB)
	sales := NewGormSaleRepository(db.DB)

	client := createTestClient(t, clients, "Ana")
	product := createTestProduct(t, products, "Agenda", 10)
	sale, err := trade.NewSale(client.ID, product.ID, 1, decimal.NewFromInt(10), time.Time{}, "")
	require.NoError(t, err)
	require.NoError(t, sales.Create(ctx, sale))

	err = products.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrReferenceInUse)
}

func TestGormSaleRepository_SummaryStorageError(t *testing.T) {
	db, mock, _ := newMockGormDB(t)
	repo := NewGormSaleRepository(db)
	driverErr := errors.New("relation does not exist")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT MAX(p.name) AS name`)).WillReturnError(driverErr)

	_, err := repo.SummarizeByProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
