package utils

import "golang.org/x/crypto/bcrypt"

// BcryptCost — рабочий фактор хеширования. 10 достаточно против офлайн-перебора
// при интерактивной задержке логина.
const BcryptCost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
