package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNullOrEmpty(t *testing.T) {
	assert.True(t, IsNullOrEmpty(""))
	assert.False(t, IsNullOrEmpty("a"))
	assert.False(t, IsNullOrEmpty(" "))
}

func TestIsBigInt(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"0", true},
		{"42", true},
		{"9223372036854775807", true},
		{"-1", false},
		{"1.5", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBigInt(tt.value), "valor %q", tt.value)
	}
}

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber("10"))
	assert.True(t, IsNumber("10.5"))
	assert.False(t, IsNumber("dez"))
	assert.False(t, IsNumber(""))
}

func TestIsDateValid(t *testing.T) {
	assert.True(t, IsDateValid("2024-05-01"))
	assert.True(t, IsDateValid("2024-05-01T10:30:00"))
	assert.True(t, IsDateValid("2024-05-01T10:30:00Z"))
	assert.False(t, IsDateValid("01/05/2024"))
	assert.False(t, IsDateValid("não é data"))
}

func TestIsValidCep(t *testing.T) {
	assert.True(t, IsValidCep("12345678"))
	assert.True(t, IsValidCep("12345-678"))
	assert.False(t, IsValidCep("1234-567"))
	assert.False(t, IsValidCep("abcde-fgh"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("11999998888"))
	assert.True(t, IsValidPhone("(11) 91234-5678"))
	assert.True(t, IsValidPhone("(11) 3123-4567"))
	assert.False(t, IsValidPhone("119999"))
	assert.False(t, IsValidPhone("telefone"))
}

func TestIsValidCnpj(t *testing.T) {
	// dígitos verificadores calculados à mão
	assert.True(t, IsValidCnpj("11222333000181"))
	assert.True(t, IsValidCnpj("11.222.333/0001-81"))
	assert.False(t, IsValidCnpj("11222333000182"))
	assert.False(t, IsValidCnpj("11111111111111"))
	assert.False(t, IsValidCnpj("123"))
}

func TestRemoveFormatting(t *testing.T) {
	assert.Equal(t, "12345678", RemoveFormattingCep("12345-678"))
	assert.Equal(t, "11912345678", RemoveFormattingPhone("(11) 91234-5678"))
	assert.Equal(t, "11222333000181", RemoveFormattingCnpj("11.222.333/0001-81"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	assert.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)
	assert.True(t, CheckPassword(hash, "segredo123"))
	assert.False(t, CheckPassword(hash, "outra"))
}
