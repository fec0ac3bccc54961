package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/loja/backend/internal/application/catalog"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ProductListQuery holds the query parameters of GET /produtos
type ProductListQuery struct {
	Search       string `form:"search"`
	FornecedorID string `form:"fornecedorId" binding:"omitempty,uuid"`
	MinPrice     string `form:"min_price" binding:"omitempty,numeric"`
	MaxPrice     string `form:"max_price" binding:"omitempty,numeric"`
	Page         int    `form:"page" binding:"min=0"`
	PageSize     int    `form:"page_size" binding:"min=0,max=500"`
	OrderBy      string `form:"order_by"`
	OrderDir     string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (q ProductListQuery) toFilter() catalogapp.ProductListFilter {
	filter := catalogapp.ProductListFilter{
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
		OrderBy:  q.OrderBy,
		OrderDir: q.OrderDir,
	}
	if id, err := uuid.Parse(q.FornecedorID); err == nil {
		filter.FornecedorID = &id
	}
	if d, err := decimal.NewFromString(q.MinPrice); err == nil {
		filter.MinPrice = &d
	}
	if d, err := decimal.NewFromString(q.MaxPrice); err == nil {
		filter.MaxPrice = &d
	}
	return filter
}

// Create godoc
// @ID           createProduto
// @Summary      Create a product
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateProductRequest true "Product"
// @Success      201 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /createproduto [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// GetByID godoc
// @ID           getProduto
// @Summary      Get a product
// @Tags         produtos
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /produtos/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// List godoc
// @ID           listProdutos
// @Summary      List products
// @Description  Without page parameters every product is returned, ordered by name
// @Tags         produtos
// @Produce      json
// @Param        search query string false "Name or description contains"
// @Param        fornecedorId query string false "Supplier ID" format(uuid)
// @Param        min_price query number false "Minimum price"
// @Param        max_price query number false "Maximum price"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size" maximum(500)
// @Param        order_by query string false "Order by field" Enums(name, price, created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /produtos [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query ProductListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), query.toFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, products, total, query.Page, query.PageSize)
}

// Update godoc
// @ID           updateProduto
// @Summary      Replace a product
// @Description  The optional body id must equal the path id
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body catalogapp.UpdateProductRequest true "Product"
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /produtos/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req catalogapp.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete godoc
// @ID           deleteProduto
// @Summary      Delete a product
// @Tags         produtos
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[DeletedData]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /produtos/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, DeletedData{ID: id.String(), Message: "Produto removido"})
}
