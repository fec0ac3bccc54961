package trade

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/catalog"
	"github.com/loja/backend/internal/domain/partner"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/domain/trade"
	"github.com/loja/backend/internal/infrastructure/logger"
	"github.com/loja/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// SaleService records sales and answers the per-product and per-client
// sales queries
type SaleService struct {
	saleRepo       trade.SaleRepository
	productRepo    catalog.ProductRepository
	clientRepo     partner.ClientRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewSaleService creates a new SaleService
func NewSaleService(
	saleRepo trade.SaleRepository,
	productRepo catalog.ProductRepository,
	clientRepo partner.ClientRepository,
	logger *zap.Logger,
) *SaleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the publisher for SaleRecorded events
func (s *SaleService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// RecordSale resolves the client and product, snapshots the unit price and
// stores the sale. Either reference missing yields REFERENCE_NOT_FOUND and
// nothing is written.
func (s *SaleService) RecordSale(ctx context.Context, req CreateSaleRequest) (resp *SaleResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "sale", "record",
		telemetry.AttrID("sale.client_id", req.ClienteID),
		telemetry.AttrID("sale.product_id", req.ProdutoID),
		attribute.Int("sale.quantity", req.Quantidade),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	product, err := s.productRepo.FindByID(ctx, req.ProdutoID)
	if err != nil {
		return nil, referenceError(err)
	}
	client, err := s.clientRepo.FindByID(ctx, req.ClienteID)
	if err != nil {
		return nil, referenceError(err)
	}

	unitPrice := product.Price
	if req.PrecoUnitario != nil {
		unitPrice = *req.PrecoUnitario
	}
	var saleDate time.Time
	if req.DataVenda != nil {
		saleDate = *req.DataVenda
	}

	sale, err := trade.NewSale(client.ID, product.ID, req.Quantidade, unitPrice, saleDate, req.NumeroNotaFiscal)
	if err != nil {
		return nil, err
	}
	sale.AttachReferences(client.Name, product.Name)

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	log := logger.WithLogger(ctx, s.logger)
	log.Info("Sale recorded",
		zap.String("sale_id", sale.ID.String()),
		zap.String("client_id", sale.ClientID.String()),
		zap.String("product_id", sale.ProductID.String()),
		zap.Int("quantity", sale.Quantity),
		zap.String("total", sale.Total().String()))

	if err := shared.PublishAndClear(ctx, s.eventPublisher, sale); err != nil {
		log.Warn("Failed to publish sale events", zap.String("sale_id", sale.ID.String()), zap.Error(err))
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByID retrieves a sale by ID
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSaleResponse(sale)
	return &response, nil
}

// List retrieves sales, newest last unless ordered otherwise
func (s *SaleService) List(ctx context.Context, filter SaleListFilter) ([]SaleResponse, int64, error) {
	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "sale_date"
	}
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, orderBy, filter.OrderDir, "")
	if filter.ClienteID != nil {
		domainFilter.Filters["client_id"] = *filter.ClienteID
	}
	if filter.ProdutoID != nil {
		domainFilter.Filters["product_id"] = *filter.ProdutoID
	}

	sales, err := s.saleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.saleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses, total, nil
}

// SalesByProduct lists every sale of a product ordered by date
func (s *SaleService) SalesByProduct(ctx context.Context, productID uuid.UUID) ([]SaleDetailResponse, error) {
	details, err := s.saleRepo.FindDetailsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return ToSaleDetailResponses(details), nil
}

// SalesByClient lists every sale of a client ordered by date
func (s *SaleService) SalesByClient(ctx context.Context, clientID uuid.UUID) ([]SaleDetailResponse, error) {
	details, err := s.saleRepo.FindDetailsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return ToSaleDetailResponses(details), nil
}

// SummaryByProduct totals the units and revenue of a product. A product
// without sales yields zero totals and a null name.
func (s *SaleService) SummaryByProduct(ctx context.Context, productID uuid.UUID) (*ProductSalesSummaryResponse, error) {
	summary, err := s.saleRepo.SummarizeByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &ProductSalesSummaryResponse{
		ProdutoNome:            summary.Name,
		TotalQuantidadeVendida: summary.TotalQuantity,
		TotalPrecoVenda:        summary.TotalRevenue,
	}, nil
}

// SummaryByClient totals the units and spend of a client
func (s *SaleService) SummaryByClient(ctx context.Context, clientID uuid.UUID) (*ClientSalesSummaryResponse, error) {
	summary, err := s.saleRepo.SummarizeByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &ClientSalesSummaryResponse{
		ClienteNome:            summary.Name,
		TotalQuantidadeVendida: summary.TotalQuantity,
		TotalPrecoVenda:        summary.TotalRevenue,
	}, nil
}

func referenceError(err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return trade.ErrReferenceNotFound
	}
	return err
}
