package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/partner"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestClient(t *testing.T, repo *GormClientRepository, name string) *partner.Client {
	t.Helper()
	c, err := partner.NewClient(name, "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), c))
	return c
}

func createTestSupplier(t *testing.T, repo *GormSupplierRepository, name string) *partner.Supplier {
	t.Helper()
	s, err := partner.NewSupplier(name, "", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), s))
	return s
}

func TestGormClientRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	c, err := partner.NewClient("Maria Souza", "123.456.789-09", "Maria@Example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))
	createTestClient(t, repo, "Ana Lima")

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", found.Name)
		assert.Equal(t, "12345678909", found.CPF)
		assert.Equal(t, "maria@example.com", found.Email)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		clients, err := repo.FindAll(ctx, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, clients, 2)
		assert.Equal(t, "Ana Lima", clients[0].Name)
		assert.Equal(t, "Maria Souza", clients[1].Name)
	})

	t.Run("search matches cpf", func(t *testing.T) {
		clients, err := repo.FindAll(ctx, shared.Filter{Search: "456789"})
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, c.ID, clients[0].ID)
	})

	t.Run("filter by cpf", func(t *testing.T) {
		count, err := repo.Count(ctx, shared.Filter{Filters: map[string]interface{}{"cpf": "12345678909"}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, c.Update("Maria S. Souza", "", "maria@example.com"))
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maria S. Souza", found.Name)
		assert.Empty(t, found.CPF)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, c.ID))
		_, err := repo.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, c.ID), shared.ErrNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		exists, err := repo.ExistsByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormSupplierRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSupplierRepository(db)
	ctx := context.Background()

	s, err := partner.NewSupplier("Distribuidora Sul", "12.345.678/0001-95", "vendas@sul.com.br", "(51) 3333-4444")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, s))
	createTestSupplier(t, repo, "Atacado Norte")

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Sul", found.Name)
	assert.Equal(t, "12345678000195", found.CNPJ)
	assert.Equal(t, "(51) 3333-4444", found.Phone)

	suppliers, err := repo.FindAll(ctx, shared.Filter{OrderBy: "name", OrderDir: "desc"})
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "Distribuidora Sul", suppliers[0].Name)

	exists, err := repo.ExistsByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, s.ID))
	assert.ErrorIs(t, repo.Delete(ctx, s.ID), shared.ErrNotFound)

	count, err := repo.Count(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
