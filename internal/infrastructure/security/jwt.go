package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/config"
)

// Claims é o payload dos tokens emitidos pela API
type Claims struct {
	TokenType ports.TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTService implementa ports.TokenIssuer com HS256
type JWTService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

// NewJWTService cria um novo JWTService
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:        []byte(cfg.Secret),
		accessExpiry:  cfg.AccessExpiry,
		refreshExpiry: cfg.RefreshExpiry,
		now:           time.Now,
	}
}

// Issue gera um token assinado do tipo pedido para o usuário
func (s *JWTService) Issue(userID string, tokenType ports.TokenType) (string, *ports.TokenClaims, error) {
	expiry := s.accessExpiry
	if tokenType == ports.RefreshToken {
		expiry = s.refreshExpiry
	}

	now := s.now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, toPortClaims(&claims), nil
}

// Parse valida assinatura, algoritmo e validade do token.
// Qualquer falha vira domainerrors.ErrInvalidToken.
func (s *JWTService) Parse(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	return toPortClaims(claims), nil
}

func toPortClaims(c *Claims) *ports.TokenClaims {
	var expiresAt time.Time
	if c.ExpiresAt != nil {
		expiresAt = c.ExpiresAt.Time
	}
	return &ports.TokenClaims{
		UserID:    c.Subject,
		TokenID:   c.ID,
		Type:      c.TokenType,
		ExpiresAt: expiresAt,
	}
}
