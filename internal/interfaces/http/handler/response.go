package handler

import "github.com/loja/backend/internal/interfaces/http/dto"

// Envelope shapes used only by the swag annotations. Handlers write
// dto.Response directly through BaseHandler.

// APIResponse is dto.Response with a typed data field.
// @Description Success envelope
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse
// @Description Failure envelope, success is always false
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// DeletedData acknowledges a delete.
// @Description Id of the removed record
type DeletedData struct {
	ID      string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Message string `json:"message" example:"Produto removido"`
}
