package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/loja/backend/internal/application/partner"
)

// SupplierHandler handles supplier-related API endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *partnerapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *partnerapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
	}
}

// Create godoc
// @ID           createFornecedor
// @Summary      Create a supplier
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.SupplierRequest true "Supplier"
// @Success      201 {object} APIResponse[partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /createfornecedor [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	var req partnerapp.SupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, supplier)
}

// GetByID godoc
// @ID           getFornecedor
// @Summary      Get a supplier
// @Tags         fornecedores
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /fornecedores/{id} [get]
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// List godoc
// @ID           listFornecedores
// @Summary      List suppliers
// @Tags         fornecedores
// @Produce      json
// @Param        search query string false "Name, CNPJ or email contains"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size" maximum(500)
// @Param        order_by query string false "Order by field" Enums(name, cnpj, email, created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /fornecedores [get]
func (h *SupplierHandler) List(c *gin.Context) {
	var filter partnerapp.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	suppliers, total, err := h.supplierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, suppliers, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateFornecedor
// @Summary      Replace a supplier
// @Description  The optional body id must equal the path id
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Param        request body partnerapp.SupplierRequest true "Supplier"
// @Success      200 {object} APIResponse[partnerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /fornecedores/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req partnerapp.SupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Delete godoc
// @ID           deleteFornecedor
// @Summary      Delete a supplier
// @Tags         fornecedores
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[DeletedData]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /fornecedores/{id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, DeletedData{ID: id.String(), Message: "Fornecedor removido"})
}
