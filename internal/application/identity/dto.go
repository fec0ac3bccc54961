package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/identity"
)

// LoginRequest is the body of POST /login. Email and senha identify the
// account; username is carried for audit logging only.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Senha    string `json:"senha" binding:"required"`
}

// CreateUserRequest represents a request to register a user
type CreateUserRequest struct {
	Nome  string `json:"nome" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email,max=200"`
	Senha string `json:"senha" binding:"required,min=8,max=72"`
}

// UpdateUserRequest replaces a user's profile. Senha is optional; when set
// the stored hash is replaced.
type UpdateUserRequest struct {
	ID    *uuid.UUID `json:"id"`
	Nome  string     `json:"nome" binding:"required,min=1,max=100"`
	Email string     `json:"email" binding:"required,email,max=200"`
	Senha string     `json:"senha" binding:"omitempty,min=8,max=72"`
}

// UserListFilter represents list options for users
type UserListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=500"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// UserResponse represents a user in API responses. The password hash is
// never part of it.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AccessResponse is returned by the protected probe routes
type AccessResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Nome:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
