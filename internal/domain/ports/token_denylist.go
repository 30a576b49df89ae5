package ports

import (
	"context"
	"time"
)

// TokenDenylist guarda os IDs (jti) de tokens revogados até expirarem
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
