package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tradeapp "github.com/loja/backend/internal/application/trade"
)

// SaleHandler handles sale recording and the sales reports
type SaleHandler struct {
	BaseHandler
	saleService *tradeapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *tradeapp.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

// SaleListQuery holds the query parameters of GET /vendas
type SaleListQuery struct {
	ClienteID string `form:"clienteId" binding:"omitempty,uuid"`
	ProdutoID string `form:"produtoId" binding:"omitempty,uuid"`
	Page      int    `form:"page" binding:"min=0"`
	PageSize  int    `form:"page_size" binding:"min=0,max=500"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (q SaleListQuery) toFilter() tradeapp.SaleListFilter {
	filter := tradeapp.SaleListFilter{
		Page:     q.Page,
		PageSize: q.PageSize,
		OrderBy:  q.OrderBy,
		OrderDir: q.OrderDir,
	}
	if id, err := uuid.Parse(q.ClienteID); err == nil {
		filter.ClienteID = &id
	}
	if id, err := uuid.Parse(q.ProdutoID); err == nil {
		filter.ProdutoID = &id
	}
	return filter
}

// Create godoc
// @ID           createVenda
// @Summary      Record a sale
// @Description  Client and product must exist. Without precoUnitario the current product price is used.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        request body tradeapp.CreateSaleRequest true "Sale"
// @Success      201 {object} APIResponse[tradeapp.SaleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /createvenda [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req tradeapp.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sale)
}

// GetByID godoc
// @ID           getVenda
// @Summary      Get a sale
// @Tags         vendas
// @Produce      json
// @Param        id path string true "Sale ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.SaleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /vendas/{id} [get]
func (h *SaleHandler) GetByID(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// List godoc
// @ID           listVendas
// @Summary      List sales
// @Tags         vendas
// @Produce      json
// @Param        clienteId query string false "Client ID" format(uuid)
// @Param        produtoId query string false "Product ID" format(uuid)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size" maximum(500)
// @Param        order_by query string false "Order by field" Enums(sale_date, quantity, unit_price, created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]tradeapp.SaleResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /vendas [get]
func (h *SaleHandler) List(c *gin.Context) {
	var query SaleListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	sales, total, err := h.saleService.List(c.Request.Context(), query.toFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, sales, total, query.Page, query.PageSize)
}

// ByProduct godoc
// @ID           vendasPorProduto
// @Summary      Sales of a product
// @Tags         vendas
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[[]tradeapp.SaleDetailResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /vendas/produto/{id} [get]
func (h *SaleHandler) ByProduct(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	details, err := h.saleService.SalesByProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, details)
}

// SummaryByProduct godoc
// @ID           somaVendasPorProduto
// @Summary      Sales totals of a product
// @Description  Zero totals and a null name when the product has no sales
// @Tags         vendas
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.ProductSalesSummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /vendas/produto/sum/{id} [get]
func (h *SaleHandler) SummaryByProduct(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	summary, err := h.saleService.SummaryByProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// ByClient godoc
// @ID           vendasPorCliente
// @Summary      Sales of a client
// @Tags         vendas
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Success      200 {object} APIResponse[[]tradeapp.SaleDetailResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /vendas/cliente/{id} [get]
func (h *SaleHandler) ByClient(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	details, err := h.saleService.SalesByClient(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, details)
}

// SummaryByClient godoc
// @ID           somaVendasPorCliente
// @Summary      Sales totals of a client
// @Tags         vendas
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.ClientSalesSummaryResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /vendas/cliente/sum/{id} [get]
func (h *SaleHandler) SummaryByClient(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	summary, err := h.saleService.SummaryByClient(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}
