package security

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implementa ports.PasswordHasher
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo informado (0 usa o default)
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
