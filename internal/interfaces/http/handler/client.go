package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/loja/backend/internal/application/partner"
)

// ClientHandler handles client-related API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *partnerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// Create godoc
// @ID           createCliente
// @Summary      Create a client
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.ClientRequest true "Client"
// @Success      201 {object} APIResponse[partnerapp.ClientResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /createcliente [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req partnerapp.ClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, client)
}

// GetByID godoc
// @ID           getCliente
// @Summary      Get a client
// @Tags         clientes
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.ClientResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /clientes/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, client)
}

// List godoc
// @ID           listClientes
// @Summary      List clients
// @Tags         clientes
// @Produce      json
// @Param        search query string false "Name, CPF or email contains"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size" maximum(500)
// @Param        order_by query string false "Order by field" Enums(name, cpf, email, created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]partnerapp.ClientResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /clientes [get]
func (h *ClientHandler) List(c *gin.Context) {
	var filter partnerapp.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	clients, total, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, clients, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateCliente
// @Summary      Replace a client
// @Description  The optional body id must equal the path id
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Param        request body partnerapp.ClientRequest true "Client"
// @Success      200 {object} APIResponse[partnerapp.ClientResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /clientes/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req partnerapp.ClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete godoc
// @ID           deleteCliente
// @Summary      Delete a client
// @Tags         clientes
// @Produce      json
// @Param        id path string true "Client ID" format(uuid)
// @Success      200 {object} APIResponse[DeletedData]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /clientes/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, DeletedData{ID: id.String(), Message: "Cliente removido"})
}
