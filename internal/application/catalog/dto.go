package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Nome         string          `json:"nome" binding:"required,min=1,max=200"`
	Descricao    string          `json:"descricao" binding:"max=2000"`
	Preco        decimal.Decimal `json:"preco"`
	FornecedorID *uuid.UUID      `json:"fornecedorId"`
}

// UpdateProductRequest represents a full replacement of a product.
// ID is optional; when present it must equal the path id.
type UpdateProductRequest struct {
	ID           *uuid.UUID      `json:"id"`
	Nome         string          `json:"nome" binding:"required,min=1,max=200"`
	Descricao    string          `json:"descricao" binding:"max=2000"`
	Preco        decimal.Decimal `json:"preco"`
	FornecedorID *uuid.UUID      `json:"fornecedorId"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search       string           `form:"search"`
	FornecedorID *uuid.UUID       `form:"fornecedorId"`
	MinPrice     *decimal.Decimal `form:"min_price"`
	MaxPrice     *decimal.Decimal `form:"max_price"`
	Page         int              `form:"page" binding:"min=0"`
	PageSize     int              `form:"page_size" binding:"min=0,max=500"`
	OrderBy      string           `form:"order_by"`
	OrderDir     string           `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Nome         string          `json:"nome"`
	Descricao    string          `json:"descricao"`
	Preco        decimal.Decimal `json:"preco"`
	FornecedorID *uuid.UUID      `json:"fornecedorId"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Nome:         p.Name,
		Descricao:    p.Description,
		Preco:        p.Price,
		FornecedorID: p.SupplierID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
