package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/catalog"
	"github.com/loja/backend/internal/domain/partner"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ErrSupplierNotFound is returned when a product references a missing supplier
var ErrSupplierNotFound = shared.NewDomainError("REFERENCE_NOT_FOUND", "Supplier not found")

// ProductService handles product-related business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	supplierRepo   partner.SupplierRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, supplierRepo partner.SupplierRepository, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the publisher for product events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Nome, req.Preco)
	if err != nil {
		return nil, err
	}
	product.Description = req.Descricao
	if err := s.assignSupplier(ctx, product, req.FornecedorID); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publish(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering. Without paging options every
// product is returned ordered by name.
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)
	if filter.FornecedorID != nil {
		domainFilter.Filters["supplier_id"] = *filter.FornecedorID
	}
	if filter.MinPrice != nil {
		domainFilter.Filters["min_price"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		domainFilter.Filters["max_price"] = *filter.MaxPrice
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update replaces the editable fields of a product. A payload id that
// differs from the path id is rejected before storage is read.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if req.ID != nil && *req.ID != id {
		return nil, shared.ErrIDMismatch
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Nome, req.Descricao); err != nil {
		return nil, err
	}
	if err := product.SetPrice(req.Preco); err != nil {
		return nil, err
	}
	if err := s.assignSupplier(ctx, product, req.FornecedorID); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.publish(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product. Deleting a missing product returns NOT_FOUND.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *ProductService) assignSupplier(ctx context.Context, product *catalog.Product, supplierID *uuid.UUID) error {
	if supplierID == nil || *supplierID == uuid.Nil {
		product.SetSupplier(nil)
		return nil
	}
	exists, err := s.supplierRepo.ExistsByID(ctx, *supplierID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSupplierNotFound
	}
	product.SetSupplier(supplierID)
	return nil
}

func (s *ProductService) publish(ctx context.Context, product *catalog.Product) {
	if err := shared.PublishAndClear(ctx, s.eventPublisher, product); err != nil {
		logger.WithLogger(ctx, s.logger).Warn("Failed to publish product events",
			zap.String("product_id", product.ID.String()),
			zap.Error(err))
	}
}

