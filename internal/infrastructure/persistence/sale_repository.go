package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/domain/trade"
	"github.com/loja/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository and the sales aggregation
// queries using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create inserts a sale once both references are confirmed inside the same
// transaction, so the check and the insert see one snapshot.
func (r *GormSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ref := range []struct {
			model any
			id    uuid.UUID
		}{
			{&models.ClientModel{}, sale.ClientID},
			{&models.ProductModel{}, sale.ProductID},
		} {
			var count int64
			if err := tx.Model(ref.model).Where("id = ?", ref.id).Count(&count).Error; err != nil {
				return fmt.Errorf("check sale reference: %w", err)
			}
			if count == 0 {
				return trade.ErrReferenceNotFound
			}
		}

		if err := tx.Create(models.SaleModelFromDomain(sale)).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return trade.ErrReferenceNotFound
			}
			return translateError("create sale", err)
		}
		return nil
	})
}

// FindByID finds a sale by ID with client and product names resolved
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Product").
		First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError("find sale", err)
	}
	return model.ToDomain(), nil
}

// FindAll lists sales with client and product names resolved
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Sale, error) {
	var rows []models.SaleModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SaleModel{}), filter).
		Preload("Client").
		Preload("Product")
	query = applyPagination(applyOrdering(query, filter, saleSortColumns, "sale_date"), filter)

	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError("list sales", err)
	}

	sales := make([]trade.Sale, len(rows))
	for i := range rows {
		sales[i] = *rows[i].ToDomain()
	}
	return sales, nil
}

// Count counts sales matching the filter
func (r *GormSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&models.SaleModel{}), filter).Count(&count).Error; err != nil {
		return 0, translateError("count sales", err)
	}
	return count, nil
}

// FindDetailsByProduct lists the sales of one product ordered by sale date
func (r *GormSaleRepository) FindDetailsByProduct(ctx context.Context, productID uuid.UUID) ([]trade.SaleDetail, error) {
	return r.findDetails(ctx, "s.product_id = ?", productID)
}

// FindDetailsByClient lists the sales of one client ordered by sale date
func (r *GormSaleRepository) FindDetailsByClient(ctx context.Context, clientID uuid.UUID) ([]trade.SaleDetail, error) {
	return r.findDetails(ctx, "s.client_id = ?", clientID)
}

// SummarizeByProduct totals quantity and revenue of one product.
// With no sales the name is nil and both totals are zero.
func (r *GormSaleRepository) SummarizeByProduct(ctx context.Context, productID uuid.UUID) (*trade.SalesSummary, error) {
	return r.summarize(ctx, "MAX(p.name)", "s.product_id = ?", productID)
}

// SummarizeByClient totals quantity and revenue of one client
func (r *GormSaleRepository) SummarizeByClient(ctx context.Context, clientID uuid.UUID) (*trade.SalesSummary, error) {
	return r.summarize(ctx, "MAX(c.name)", "s.client_id = ?", clientID)
}

type saleDetailRow struct {
	SaleID      uuid.UUID
	SaleDate    time.Time
	ProductID   uuid.UUID
	ProductName string
	ClientID    uuid.UUID
	ClientName  string
	Quantity    int
	UnitPrice   decimal.Decimal
}

type salesSummaryRow struct {
	Name          *string
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
}

// joinedSales selects from sales joined to their product and client
func (r *GormSaleRepository) joinedSales(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("sales AS s").
		Joins("JOIN products AS p ON p.id = s.product_id").
		Joins("JOIN clients AS c ON c.id = s.client_id")
}

func (r *GormSaleRepository) findDetails(ctx context.Context, cond string, id uuid.UUID) ([]trade.SaleDetail, error) {
	var rows []saleDetailRow
	err := r.joinedSales(ctx).
		Select("s.id AS sale_id, s.sale_date, s.product_id, p.name AS product_name, " +
			"s.client_id, c.name AS client_name, s.quantity, s.unit_price").
		Where(cond, id).
		Order("s.sale_date ASC, s.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("list sale details", err)
	}

	details := make([]trade.SaleDetail, len(rows))
	for i, row := range rows {
		details[i] = trade.SaleDetail(row)
	}
	return details, nil
}

func (r *GormSaleRepository) summarize(ctx context.Context, nameExpr, cond string, id uuid.UUID) (*trade.SalesSummary, error) {
	var row salesSummaryRow
	err := r.joinedSales(ctx).
		Select(nameExpr+" AS name, "+
			"COALESCE(SUM(s.quantity), 0) AS total_quantity, "+
			"COALESCE(SUM(s.unit_price * s.quantity), 0) AS total_revenue").
		Where(cond, id).
		Scan(&row).Error
	if err != nil {
		return nil, translateError("summarize sales", err)
	}

	return &trade.SalesSummary{
		Name:          row.Name,
		TotalQuantity: row.TotalQuantity,

		// sqlite sums numeric columns as REAL; prices carry two places, so
		// rounding recovers the exact decimal total
		TotalRevenue: row.TotalRevenue.Round(shared.MoneyScale),
	}, nil
}

func (r *GormSaleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "from":
			query = query.Where("sale_date >= ?", value)
		case "to":
			query = query.Where("sale_date <= ?", value)
		}
	}
	return query
}

var _ trade.SaleRepository = (*GormSaleRepository)(nil)
