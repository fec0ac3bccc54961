package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/loja/backend/internal/application/identity"
)

// UserHandler handles user-related API endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Create godoc
// @ID           createUsuario
// @Summary      Register a user
// @Description  The password is stored as a bcrypt hash and never returned
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateUserRequest true "User"
// @Success      201 {object} APIResponse[identityapp.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /createusuario [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req identityapp.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, user)
}

// GetByID godoc
// @ID           getUsuario
// @Summary      Get a user
// @Tags         usuarios
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[identityapp.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /usuarios/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// List godoc
// @ID           listUsuarios
// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Param        search query string false "Name or email contains"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size" maximum(500)
// @Param        order_by query string false "Order by field" Enums(name, email, created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]identityapp.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /usuarios [get]
func (h *UserHandler) List(c *gin.Context) {
	var filter identityapp.UserListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, users, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateUsuario
// @Summary      Replace a user
// @Description  Senha is optional; when present the password is changed
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Param        request body identityapp.UpdateUserRequest true "User"
// @Success      200 {object} APIResponse[identityapp.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /usuarios/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req identityapp.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// Delete godoc
// @ID           deleteUsuario
// @Summary      Delete a user
// @Tags         usuarios
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[DeletedData]
// @Failure      404 {object} ErrorResponse
// @Router       /usuarios/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, DeletedData{ID: id.String(), Message: "Usuário removido"})
}
