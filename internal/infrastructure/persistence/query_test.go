package persistence

import (
	"errors"
	"testing"

	"github.com/loja/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSortColumns(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"whitelisted", "price", "price"},
		{"always sortable by id", "id", "id"},
		{"trimmed", "  name ", "name"},
		{"empty falls back", "", "name"},
		{"case sensitive", "PRICE", "name"},
		{"unknown column", "password_hash", "name"},
		{"injection", "price; DROP TABLE products;--", "name"},
		{"subquery", "(SELECT 1)", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productSortColumns.column(tt.requested, "name"))
		})
	}

	for name, cols := range map[string]sortColumns{
		"product": productSortColumns, "client": clientSortColumns, "supplier": supplierSortColumns,
		"user": userSortColumns, "sale": saleSortColumns,
	} {
		assert.True(t, cols["id"], name)
		assert.True(t, cols["created_at"], name)
	}
	assert.False(t, userSortColumns["password_hash"])
}

func TestSortDirection(t *testing.T) {
	assert.Equal(t, "DESC", sortDirection("desc"))
	assert.Equal(t, "DESC", sortDirection(" DESC "))
	assert.Equal(t, "ASC", sortDirection("asc"))
	assert.Equal(t, "ASC", sortDirection(""))
	assert.Equal(t, "ASC", sortDirection("desc; DROP TABLE users"))
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError("op", nil))
	assert.ErrorIs(t, translateError("op", gorm.ErrRecordNotFound), shared.ErrNotFound)
	assert.ErrorIs(t, translateError("op", gorm.ErrDuplicatedKey), shared.ErrAlreadyExists)
	assert.ErrorIs(t, translateError("op", gorm.ErrForeignKeyViolated), shared.ErrReferenceInUse)

	boom := errors.New("connection reset")
	err := translateError("list products", boom)
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "list products: connection reset")

	var domainErr *shared.DomainError
	assert.False(t, errors.As(err, &domainErr))
}
