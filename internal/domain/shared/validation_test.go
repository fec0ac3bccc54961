package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "ana@loja.com", true},
		{"subdomain and plus", "ana+vendas@mail.loja.com.br", true},
		{"missing at", "ana.loja.com", false},
		{"missing tld", "ana@loja", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@loja.com", NormalizeEmail("  Ana@Loja.COM "))
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "12345678909", OnlyDigits("123.456.789-09"))
	assert.Equal(t, "12345678000195", OnlyDigits("12.345.678/0001-95"))
	assert.Equal(t, "", OnlyDigits("abc"))
}

func TestDomainError_Is(t *testing.T) {
	err := NewDomainError("NOT_FOUND", "Product not found")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrIDMismatch)
}
