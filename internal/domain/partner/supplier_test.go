package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("creates supplier with valid input", func(t *testing.T) {
		supplier, err := NewSupplier("Papelaria Central", "12.345.678/0001-95", "Contato@Central.com", "11 5555-0000")
		require.NoError(t, err)
		require.NotNil(t, supplier)

		assert.NotEqual(t, uuid.Nil, supplier.ID)
		assert.Equal(t, "Papelaria Central", supplier.Name)
		assert.Equal(t, "12345678000195", supplier.CNPJ)
		assert.Equal(t, "contato@central.com", supplier.Email)
		assert.Equal(t, "11 5555-0000", supplier.Phone)

		events := supplier.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeSupplierCreated, events[0].EventType())
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		supplier, err := NewSupplier("Sem Documento", "", "", "")
		require.NoError(t, err)
		assert.Empty(t, supplier.CNPJ)
		assert.Empty(t, supplier.Email)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		supplier, err := NewSupplier("", "", "", "")
		assert.Nil(t, supplier)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with short cnpj", func(t *testing.T) {
		_, err := NewSupplier("Fornecedor", "123", "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "14 digits")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewSupplier("Fornecedor", "", "not-an-email", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email")
	})
}

func TestSupplier_Update(t *testing.T) {
	supplier, err := NewSupplier("Antigo", "", "", "")
	require.NoError(t, err)

	err = supplier.Update("Novo Nome", "12345678000195", "novo@fornecedor.com", "")
	require.NoError(t, err)
	assert.Equal(t, "Novo Nome", supplier.Name)
	assert.Equal(t, 2, supplier.GetVersion())

	err = supplier.Update("", "", "", "")
	assert.Error(t, err)
	assert.Equal(t, "Novo Nome", supplier.Name)
}
