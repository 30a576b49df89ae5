package entities

import (
	"errors"
	"strings"
	"time"
)

// User representa um usuário da API (quem obtém tokens)
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft delete
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return errors.New("username is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}
