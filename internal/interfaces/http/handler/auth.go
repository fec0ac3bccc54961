package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/loja/backend/internal/application/identity"
	domainidentity "github.com/loja/backend/internal/domain/identity"
	"github.com/loja/backend/internal/interfaces/http/dto"
	"github.com/loja/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles login and the token probe routes
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
// @ID           login
// @Summary      Log in
// @Description  Exchange email and password for a bearer token. Username is recorded for auditing only.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.LoginRequest true "Login credentials"
// @Success      200 {object} APIResponse[auth.TokenPair]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.ErrCodeMalformedRequest, domainidentity.ErrMalformedRequest.Message)
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pair)
}

// RotaSegura godoc
// @ID           rotaSegura
// @Summary      Authorization probe
// @Description  Succeeds for any valid bearer token
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[identity.AccessResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /rotaSegura [get]
func (h *AuthHandler) RotaSegura(c *gin.Context) {
	h.Success(c, h.authService.Authorize(middleware.GetUserEmail(c)))
}

// RotaProtegida godoc
// @ID           rotaProtegida
// @Summary      Identity probe
// @Description  Echoes the email carried by the bearer token
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[identity.AccessResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /rotaProtegida [get]
func (h *AuthHandler) RotaProtegida(c *gin.Context) {
	h.Success(c, h.authService.WhoAmI(middleware.GetUserEmail(c)))
}
