package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/partner"
)

// ClientRequest is the payload for creating or replacing a client.
// ID is only read on update, where it must equal the path id when present.
type ClientRequest struct {
	ID    *uuid.UUID `json:"id"`
	Nome  string     `json:"nome" binding:"required,min=1,max=200"`
	CPF   string     `json:"cpf" binding:"omitempty,cpf"`
	Email string     `json:"email" binding:"omitempty,email,max=200"`
}

// SupplierRequest is the payload for creating or replacing a supplier
type SupplierRequest struct {
	ID       *uuid.UUID `json:"id"`
	Nome     string     `json:"nome" binding:"required,min=1,max=200"`
	CNPJ     string     `json:"cnpj" binding:"omitempty,cnpj"`
	Email    string     `json:"email" binding:"omitempty,email,max=200"`
	Telefone string     `json:"telefone" binding:"max=50"`
}

// ListFilter represents list options shared by clients and suppliers
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=500"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToClientResponse converts a domain Client to ClientResponse
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Nome:      c.Name,
		CPF:       c.CPF,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToSupplierResponse converts a domain Supplier to SupplierResponse
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Nome:      s.Name,
		CNPJ:      s.CNPJ,
		Email:     s.Email,
		Telefone:  s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
