package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	catalogapp "github.com/loja/backend/internal/application/catalog"
	partnerapp "github.com/loja/backend/internal/application/partner"
	"github.com/loja/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createClient(t *testing.T, env *testEnv, nome string) partnerapp.ClientResponse {
	t.Helper()
	return createResource[partnerapp.ClientResponse](t, env, "/createcliente", map[string]any{
		"nome":  nome,
		"cpf":   "123.456.789-09",
		"email": "cliente@loja.com",
	})
}

func TestClientHandler_CRUD(t *testing.T) {
	env := newTestEnv(t)
	c := createClient(t, env, "Maria")
	assert.Equal(t, "12345678909", c.CPF)

	t.Run("get", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/clientes/"+c.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got partnerapp.ClientResponse
		decodeData(t, w, &got)
		assert.Equal(t, "Maria", got.Nome)
	})

	t.Run("list with search", func(t *testing.T) {
		createClient(t, env, "Joao")
		w := env.do(t, http.MethodGet, "/clientes?search=mar", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []partnerapp.ClientResponse
		decodeData(t, w, &list)
		require.Len(t, list, 1)
		assert.Equal(t, c.ID, list[0].ID)
	})

	t.Run("update without body id", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/clientes/"+c.ID.String(), map[string]any{
			"nome":  "Maria Silva",
			"email": "maria@loja.com",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var got partnerapp.ClientResponse
		decodeData(t, w, &got)
		assert.Equal(t, "Maria Silva", got.Nome)
		assert.Equal(t, "maria@loja.com", got.Email)
	})

	t.Run("update with mismatched id", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/clientes/"+c.ID.String(), map[string]any{
			"id":   uuid.New(),
			"nome": "Outra",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeIDMismatch, decodeError(t, w).Code)
	})

	t.Run("delete twice", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/clientes/"+c.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		w = env.do(t, http.MethodDelete, "/clientes/"+c.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestClientHandler_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing name", map[string]any{"cpf": "12345678909"}, "nome"},
		{"short cpf", map[string]any{"nome": "Ana", "cpf": "1234"}, "cpf"},
		{"bad email", map[string]any{"nome": "Ana", "email": "ana"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/createcliente", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			errInfo := decodeError(t, w)
			assert.Equal(t, dto.ErrCodeValidation, errInfo.Code)
			require.NotEmpty(t, errInfo.Details)
			assert.Equal(t, tt.field, errInfo.Details[0].Field)
		})
	}
}

func TestSupplierHandler_CRUD(t *testing.T) {
	env := newTestEnv(t)
	s := createResource[partnerapp.SupplierResponse](t, env, "/createfornecedor", map[string]any{
		"nome":     "Papelaria Central",
		"cnpj":     "12.345.678/0001-95",
		"telefone": "11 5555-0000",
	})
	assert.Equal(t, "12345678000195", s.CNPJ)

	t.Run("list", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/fornecedores", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []partnerapp.SupplierResponse
		decodeData(t, w, &list)
		assert.Len(t, list, 1)
	})

	t.Run("update", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/fornecedores/"+s.ID.String(), map[string]any{
			"id":       s.ID,
			"nome":     "Papelaria Nova",
			"cnpj":     "12345678000195",
			"telefone": "11 5555-0001",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var got partnerapp.SupplierResponse
		decodeData(t, w, &got)
		assert.Equal(t, "Papelaria Nova", got.Nome)
		assert.Equal(t, "11 5555-0001", got.Telefone)
	})

	t.Run("invalid cnpj", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/createfornecedor", map[string]any{"nome": "X", "cnpj": "123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeError(t, w).Code)
	})

	t.Run("delete keeps products and clears the link", func(t *testing.T) {
		p := createResource[catalogapp.ProductResponse](t, env, "/createproduto", map[string]any{
			"nome":         "Lapis",
			"preco":        1,
			"fornecedorId": s.ID,
		})

		w := env.do(t, http.MethodDelete, "/fornecedores/"+s.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = env.do(t, http.MethodGet, "/produtos/"+p.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got catalogapp.ProductResponse
		decodeData(t, w, &got)
		assert.Nil(t, got.FornecedorID)

		w = env.do(t, http.MethodGet, "/fornecedores/"+s.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
