package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword retorna o hash bcrypt da senha em texto.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword compara hash bcrypt com a senha em texto e retorna true se bater.
func CheckPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
