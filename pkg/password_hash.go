package pkg

import "golang.org/x/crypto/bcrypt"

const passwordHashCost = 14

func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, passwordHashCost)
}

// HashPasswordWithCost is used by tests and dev tooling, where cost 14 is too slow.
func HashPasswordWithCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
