package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost is deliberately above the library default; hashing is meant to
// be slow.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. The output embeds
// its own salt and cost parameters.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a bcrypt hash.
// Returns false on mismatch or malformed hash, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
