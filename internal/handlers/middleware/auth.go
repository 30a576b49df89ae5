package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
)

const (
	// UserContextKey guarda o usuário autenticado
	UserContextKey = "auth_user"
	// ClaimsContextKey guarda as claims do token apresentado
	ClaimsContextKey = "auth_claims"
)

// Authenticator valida um token de acesso
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entities.User, *ports.TokenClaims, error)
}

// AuthMiddleware exige um token bearer válido
type AuthMiddleware struct {
	authenticator Authenticator
	logger        ports.Logger
	onError       func(c *gin.Context, err error)
}

// NewAuthMiddleware cria o middleware; onError escreve a resposta 401
func NewAuthMiddleware(authenticator Authenticator, logger ports.Logger, onError func(c *gin.Context, err error)) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		logger:        logger,
		onError:       onError,
	}
}

// RequireAuth lê o header "Authorization: Bearer <token>"
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.handle(false)
}

// RequireAuthWebSocket também aceita ?access_token=, já que browsers não
// enviam headers customizados no upgrade do websocket
func (m *AuthMiddleware) RequireAuthWebSocket() gin.HandlerFunc {
	return m.handle(true)
}

func (m *AuthMiddleware) handle(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && allowQuery {
			token = c.Query("access_token")
		}
		if token == "" {
			m.onError(c, domainerrors.ErrUnauthorized)
			c.Abort()
			return
		}

		user, claims, err := m.authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			m.logger.Debug("authentication failed", "path", c.Request.URL.Path, "error", err)
			m.onError(c, err)
			c.Abort()
			return
		}

		c.Set(UserContextKey, user)
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CurrentClaims retorna as claims do token autenticado
func CurrentClaims(c *gin.Context) (*ports.TokenClaims, bool) {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*ports.TokenClaims)
	return claims, ok
}

// CurrentUser retorna o usuário autenticado
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}
