package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	tradeapp "github.com/loja/backend/internal/application/trade"
	"github.com/loja/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordSale(t *testing.T, env *testEnv, clienteID, produtoID uuid.UUID, qty int, price string) tradeapp.SaleResponse {
	t.Helper()
	body := map[string]any{
		"clienteId":  clienteID,
		"produtoId":  produtoID,
		"quantidade": qty,
	}
	if price != "" {
		body["precoUnitario"] = price
	}
	return createResource[tradeapp.SaleResponse](t, env, "/createvenda", body)
}

func TestSaleHandler_Create(t *testing.T) {
	env := newTestEnv(t)
	c := createClient(t, env, "Maria")
	p := createProduct(t, env, "Caneta", "10.00")

	t.Run("snapshots the current product price", func(t *testing.T) {
		before := time.Now().Add(-time.Second)
		s := recordSale(t, env, c.ID, p.ID, 3, "")
		assert.True(t, decimal.NewFromInt(10).Equal(s.PrecoUnitario))
		assert.True(t, decimal.NewFromInt(30).Equal(s.Total))
		assert.Equal(t, "Maria", s.ClienteNome)
		assert.Equal(t, "Caneta", s.ProdutoNome)
		assert.True(t, s.DataVenda.After(before))
	})

	t.Run("explicit price and invoice", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/createvenda", map[string]any{
			"clienteId":        c.ID,
			"produtoId":        p.ID,
			"quantidade":       1,
			"precoUnitario":    "8.50",
			"numeroNotaFiscal": "NF-001",
			"dataVenda":        "2026-03-01T10:00:00Z",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var s tradeapp.SaleResponse
		decodeData(t, w, &s)
		assert.Equal(t, "NF-001", s.NumeroNotaFiscal)
		assert.True(t, decimal.RequireFromString("8.5").Equal(s.PrecoUnitario))
		assert.Equal(t, 2026, s.DataVenda.Year())
	})

	t.Run("unit price beyond two decimal places", func(t *testing.T) {
		for _, price := range []string{"10.125", "10000000000000000"} {
			w := env.do(t, http.MethodPost, "/createvenda", map[string]any{
				"clienteId": c.ID, "produtoId": p.ID, "quantidade": 3, "precoUnitario": price,
			})
			assert.Equal(t, http.StatusBadRequest, w.Code, price)
			assert.Equal(t, "INVALID_PRICE", decodeError(t, w).Code, price)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/createvenda", map[string]any{
			"clienteId": c.ID, "produtoId": p.ID, "quantidade": 0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeError(t, w).Code)
	})
}

func TestSaleHandler_MissingReference(t *testing.T) {
	env := newTestEnv(t)
	c := createClient(t, env, "Maria")
	p := createProduct(t, env, "Caneta", "10.00")

	tests := []struct {
		name      string
		clienteID uuid.UUID
		produtoID uuid.UUID
	}{
		{"unknown client", uuid.New(), p.ID},
		{"unknown product", c.ID, uuid.New()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/createvenda", map[string]any{
				"clienteId": tt.clienteID, "produtoId": tt.produtoID, "quantidade": 1,
			})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, dto.ErrCodeReferenceNotFound, decodeError(t, w).Code)
		})
	}

	w := env.do(t, http.MethodGet, "/vendas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []tradeapp.SaleResponse
	decodeData(t, w, &list)
	assert.Empty(t, list)
}

func TestSaleHandler_Reports(t *testing.T) {
	env := newTestEnv(t)
	maria := createClient(t, env, "Maria")
	joao := createClient(t, env, "Joao")
	caneta := createProduct(t, env, "Caneta", "10.00")
	lapis := createProduct(t, env, "Lapis", "1.00")

	recordSale(t, env, maria.ID, caneta.ID, 2, "10")
	recordSale(t, env, joao.ID, caneta.ID, 3, "10")
	recordSale(t, env, maria.ID, lapis.ID, 4, "1.50")

	t.Run("detail by product", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/vendas/produto/"+caneta.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var details []tradeapp.SaleDetailResponse
		decodeData(t, w, &details)
		require.Len(t, details, 2)
		for _, d := range details {
			assert.Equal(t, "Caneta", d.ProdutoNome)
		}
	})

	t.Run("summary by product", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/vendas/produto/sum/"+caneta.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var summary tradeapp.ProductSalesSummaryResponse
		decodeData(t, w, &summary)
		require.NotNil(t, summary.ProdutoNome)
		assert.Equal(t, "Caneta", *summary.ProdutoNome)
		assert.Equal(t, int64(5), summary.TotalQuantidadeVendida)
		assert.True(t, decimal.NewFromInt(50).Equal(summary.TotalPrecoVenda), summary.TotalPrecoVenda.String())
	})

	t.Run("detail by client", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/vendas/cliente/"+maria.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var details []tradeapp.SaleDetailResponse
		decodeData(t, w, &details)
		require.Len(t, details, 2)
		for _, d := range details {
			assert.Equal(t, "Maria", d.ClienteNome)
		}
	})

	t.Run("summary by client", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/vendas/cliente/sum/"+maria.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var summary tradeapp.ClientSalesSummaryResponse
		decodeData(t, w, &summary)
		require.NotNil(t, summary.ClienteNome)
		assert.Equal(t, "Maria", *summary.ClienteNome)
		assert.Equal(t, int64(6), summary.TotalQuantidadeVendida)
		assert.True(t, decimal.NewFromInt(26).Equal(summary.TotalPrecoVenda), summary.TotalPrecoVenda.String())
	})

	t.Run("summary without sales", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/vendas/produto/sum/"+uuid.NewString(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"produtoNome":null`)
		var summary tradeapp.ProductSalesSummaryResponse
		decodeData(t, w, &summary)
		assert.Nil(t, summary.ProdutoNome)
		assert.Zero(t, summary.TotalQuantidadeVendida)
		assert.True(t, summary.TotalPrecoVenda.IsZero())
	})

	t.Run("detail without sales is an empty list", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/vendas/cliente/"+uuid.NewString(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("list filtered by client", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/vendas?clienteId="+joao.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []tradeapp.SaleResponse
		resp := decodeData(t, w, &list)
		require.Len(t, list, 1)
		assert.Equal(t, 3, list[0].Quantidade)
		assert.Equal(t, int64(1), resp.Meta.Total)

		w = env.do(t, http.MethodGet, "/vendas/"+list[0].ID.String(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad filter", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/vendas?produtoId=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("referenced records cannot be deleted", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/produtos/"+caneta.ID.String(), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeReferenceInUse, decodeError(t, w).Code)

		w = env.do(t, http.MethodDelete, "/clientes/"+maria.ID.String(), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeReferenceInUse, decodeError(t, w).Code)
	})
}

func TestSaleHandler_SummariesWithCents(t *testing.T) {
	env := newTestEnv(t)
	ana := createClient(t, env, "Ana")
	caderno := createProduct(t, env, "Caderno", "10.10")

	recordSale(t, env, ana.ID, caderno.ID, 3, "")
	recordSale(t, env, ana.ID, caderno.ID, 1, "0.10")
	recordSale(t, env, ana.ID, caderno.ID, 1, "0.20")

	w := env.do(t, http.MethodGet, "/vendas/produto/sum/"+caderno.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var byProduct tradeapp.ProductSalesSummaryResponse
	decodeData(t, w, &byProduct)
	assert.Equal(t, int64(5), byProduct.TotalQuantidadeVendida)
	assert.Equal(t, "30.6", byProduct.TotalPrecoVenda.String())

	w = env.do(t, http.MethodGet, "/vendas/cliente/sum/"+ana.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var byClient tradeapp.ClientSalesSummaryResponse
	decodeData(t, w, &byClient)
	assert.True(t, decimal.RequireFromString("30.60").Equal(byClient.TotalPrecoVenda), byClient.TotalPrecoVenda.String())
}
