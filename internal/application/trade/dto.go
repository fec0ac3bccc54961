package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest represents a request to record a sale. A missing
// dataVenda means now; a missing precoUnitario copies the product price.
type CreateSaleRequest struct {
	DataVenda        *time.Time       `json:"dataVenda"`
	NumeroNotaFiscal string           `json:"numeroNotaFiscal" binding:"max=50"`
	ClienteID        uuid.UUID        `json:"clienteId" binding:"required"`
	ProdutoID        uuid.UUID        `json:"produtoId" binding:"required"`
	Quantidade       int              `json:"quantidade" binding:"required,gt=0"`
	PrecoUnitario    *decimal.Decimal `json:"precoUnitario"`
}

// SaleListFilter represents list options for sales
type SaleListFilter struct {
	ClienteID *uuid.UUID `form:"clienteId"`
	ProdutoID *uuid.UUID `form:"produtoId"`
	Page      int        `form:"page" binding:"min=0"`
	PageSize  int        `form:"page_size" binding:"min=0,max=500"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID               uuid.UUID       `json:"id"`
	DataVenda        time.Time       `json:"dataVenda"`
	NumeroNotaFiscal string          `json:"numeroNotaFiscal"`
	ClienteID        uuid.UUID       `json:"clienteId"`
	ClienteNome      string          `json:"clienteNome"`
	ProdutoID        uuid.UUID       `json:"produtoId"`
	ProdutoNome      string          `json:"produtoNome"`
	Quantidade       int             `json:"quantidade"`
	PrecoUnitario    decimal.Decimal `json:"precoUnitario"`
	Total            decimal.Decimal `json:"total"`
}

// SaleDetailResponse is one row of the per-product or per-client listing
type SaleDetailResponse struct {
	ProdutoNome       string          `json:"produtoNome"`
	DataVenda         time.Time       `json:"dataVenda"`
	VendaID           uuid.UUID       `json:"vendaId"`
	ClienteNome       string          `json:"clienteNome"`
	QuantidadeVendida int             `json:"quantidadeVendida"`
	PrecoVenda        decimal.Decimal `json:"precoVenda"`
}

// ProductSalesSummaryResponse totals the sales of one product
type ProductSalesSummaryResponse struct {
	ProdutoNome            *string         `json:"produtoNome"`
	TotalQuantidadeVendida int64           `json:"totalQuantidadeVendida"`
	TotalPrecoVenda        decimal.Decimal `json:"totalPrecoVenda"`
}

// ClientSalesSummaryResponse totals the sales of one client
type ClientSalesSummaryResponse struct {
	ClienteNome            *string         `json:"clienteNome"`
	TotalQuantidadeVendida int64           `json:"totalQuantidadeVendida"`
	TotalPrecoVenda        decimal.Decimal `json:"totalPrecoVenda"`
}

// ToSaleResponse converts a domain Sale to SaleResponse
func ToSaleResponse(s *trade.Sale) SaleResponse {
	return SaleResponse{
		ID:               s.ID,
		DataVenda:        s.SaleDate,
		NumeroNotaFiscal: s.InvoiceNumber,
		ClienteID:        s.ClientID,
		ClienteNome:      s.ClientName,
		ProdutoID:        s.ProductID,
		ProdutoNome:      s.ProductName,
		Quantidade:       s.Quantity,
		PrecoUnitario:    s.UnitPrice,
		Total:            s.Total(),
	}
}

// ToSaleDetailResponses converts detail rows
func ToSaleDetailResponses(details []trade.SaleDetail) []SaleDetailResponse {
	responses := make([]SaleDetailResponse, len(details))
	for i, d := range details {
		responses[i] = SaleDetailResponse{
			ProdutoNome:       d.ProductName,
			DataVenda:         d.SaleDate,
			VendaID:           d.SaleID,
			ClienteNome:       d.ClientName,
			QuantidadeVendida: d.Quantity,
			PrecoVenda:        d.UnitPrice,
		}
	}
	return responses
}
