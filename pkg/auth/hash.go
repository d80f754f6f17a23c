package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost keeps registration latency acceptable while staying at the
// bcrypt default floor for password storage.
const hashCost = bcrypt.DefaultCost

var ErrEmptyPassword = errors.New("password cannot be empty")

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

type HashService struct{}

// HashPassword derives a bcrypt hash suitable for storage in the users table.
func (s *HashService) HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", ErrEmptyPassword
	}

	raw, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// ComparePassword reports whether password matches the stored hash. Any
// bcrypt failure, malformed hash included, counts as a mismatch.
func (s *HashService) ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
