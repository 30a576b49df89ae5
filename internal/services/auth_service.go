package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
)

// TokenPair é o par de tokens devolvido no login
type TokenPair struct {
	Access  string
	Refresh string
}

// AuthService contém a lógica de autenticação por tokens bearer
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   ports.TokenIssuer
	hasher   ports.PasswordHasher
	denylist ports.TokenDenylist
	logger   ports.Logger
	now      func() time.Time
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens ports.TokenIssuer,
	hasher ports.PasswordHasher,
	denylist ports.TokenDenylist,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		denylist: denylist,
		logger:   logger,
		now:      time.Now,
	}
}

// ObtainToken confere as credenciais e emite tokens de acesso e de renovação
func (s *AuthService) ObtainToken(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted() {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("invalid password", "user_id", user.ID)
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, _, err := s.tokens.Issue(user.ID, ports.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, _, err := s.tokens.Issue(user.ID, ports.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	s.logger.Info("tokens issued", "user_id", user.ID)
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// RefreshToken emite um novo token de acesso a partir de um token de renovação válido
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, _, err := s.verify(ctx, refreshToken, ports.RefreshToken)
	if err != nil {
		return "", err
	}

	access, _, err := s.tokens.Issue(claims.UserID, ports.AccessToken)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return access, nil
}

// Authenticate valida um token de acesso e retorna o usuário dono dele
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*entities.User, *ports.TokenClaims, error) {
	claims, user, err := s.verify(ctx, accessToken, ports.AccessToken)
	if err != nil {
		return nil, nil, err
	}
	return user, claims, nil
}

// Logout revoga o token até a sua expiração natural
func (s *AuthService) Logout(ctx context.Context, claims *ports.TokenClaims) error {
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.denylist.Revoke(ctx, claims.TokenID, ttl); err != nil {
		s.logger.Error("failed to revoke token", "token_id", claims.TokenID, "error", err)
		return err
	}

	s.logger.Info("token revoked", "user_id", claims.UserID, "token_id", claims.TokenID)
	return nil
}

// EnsureUser cria o usuário se ele ainda não existir. Retorna true quando criou.
func (s *AuthService) EnsureUser(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := user.Validate(); err != nil {
		return false, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, err
	}

	s.logger.Info("user created", "user_id", user.ID, "username", user.Username)
	return true, nil
}

func (s *AuthService) verify(ctx context.Context, token string, expected ports.TokenType) (*ports.TokenClaims, *entities.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, nil, err
	}
	if claims.Type != expected {
		return nil, nil, domainerrors.ErrInvalidToken
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if revoked {
		return nil, nil, domainerrors.ErrTokenRevoked
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || user.IsDeleted() {
		return nil, nil, domainerrors.ErrUserNotFound
	}

	return claims, user, nil
}

// IsAuthError indica se o erro deve resultar em 401
func IsAuthError(err error) bool {
	return errors.Is(err, domainerrors.ErrInvalidToken) ||
		errors.Is(err, domainerrors.ErrTokenRevoked) ||
		errors.Is(err, domainerrors.ErrUserNotFound) ||
		errors.Is(err, domainerrors.ErrInvalidCredentials) ||
		errors.Is(err, domainerrors.ErrUnauthorized)
}
