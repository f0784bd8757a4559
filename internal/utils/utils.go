package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cepRegex        = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	phoneCharsRegex = regexp.MustCompile(`^[\d()\s+.-]+$`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
)

// IsNullOrEmpty informa se a string está vazia ou só com espaços.
func IsNullOrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsBigInt informa se a string é um inteiro não negativo de 64 bits.
func IsBigInt(s string) bool {
	if s == "" {
		return false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	return err == nil && v >= 0
}

// IsNumber informa se a string é numérica.
func IsNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate aceita RFC3339 ou data simples (AAAA-MM-DD).
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func IsDateValid(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// IsValidCep valida o formato 00000-000, com hífen opcional.
func IsValidCep(s string) bool {
	return cepRegex.MatchString(s)
}

// IsValidPhone valida telefone brasileiro: 10 ou 11 dígitos após a limpeza.
func IsValidPhone(s string) bool {
	if !phoneCharsRegex.MatchString(s) {
		return false
	}
	digits := nonDigitRegex.ReplaceAllString(s, "")
	return len(digits) == 10 || len(digits) == 11
}

// IsValidCnpj valida o CNPJ pelos dois dígitos verificadores.
func IsValidCnpj(s string) bool {
	cnpj := nonDigitRegex.ReplaceAllString(s, "")
	if len(cnpj) != 14 {
		return false
	}
	allEqual := true
	for i := 1; i < 14; i++ {
		if cnpj[i] != cnpj[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}
	return cnpjCheckDigit(cnpj, 12) == int(cnpj[12]-'0') &&
		cnpjCheckDigit(cnpj, 13) == int(cnpj[13]-'0')
}

// cnpjCheckDigit calcula o dígito verificador da posição informada (12 ou 13).
func cnpjCheckDigit(cnpj string, pos int) int {
	weight := pos - 7
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(cnpj[i]-'0') * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// RemoveFormattingCep reduz o CEP aos dígitos.
func RemoveFormattingCep(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// RemoveFormattingPhone reduz o telefone aos dígitos.
func RemoveFormattingPhone(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// RemoveFormattingCnpj reduz o CNPJ aos dígitos.
func RemoveFormattingCnpj(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
