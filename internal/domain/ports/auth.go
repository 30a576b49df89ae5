package ports

import "time"

// TokenType diferencia tokens de acesso e de renovação
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// TokenClaims são os dados extraídos de um token válido
type TokenClaims struct {
	UserID    string
	TokenID   string
	Type      TokenType
	ExpiresAt time.Time
}

// TokenIssuer emite e valida tokens bearer
type TokenIssuer interface {
	Issue(userID string, tokenType TokenType) (string, *TokenClaims, error)
	Parse(token string) (*TokenClaims, error)
}

// PasswordHasher gera e confere hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
