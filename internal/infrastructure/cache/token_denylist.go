package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
)

const revokedTokenPrefix = "revoked_token:"

// RedisTokenDenylist guarda jti revogados no Redis com TTL igual ao tempo
// restante do token
type RedisTokenDenylist struct {
	client *redis.Client
}

// NewRedisTokenDenylist cria um denylist sobre um client Redis
func NewRedisTokenDenylist(client *redis.Client) ports.TokenDenylist {
	return &RedisTokenDenylist{client: client}
}

func (d *RedisTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err()
}

func (d *RedisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryTokenDenylist é o fallback em processo quando REDIS_URL não está
// configurada. Não é compartilhado entre instâncias.
type MemoryTokenDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti -> expiração
	now     func() time.Time
}

// NewMemoryTokenDenylist cria um denylist em memória
func NewMemoryTokenDenylist() *MemoryTokenDenylist {
	return &MemoryTokenDenylist{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (d *MemoryTokenDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	d.revoked[tokenID] = now.Add(ttl)

	// Limpeza oportunista das entradas vencidas
	for id, exp := range d.revoked {
		if !exp.After(now) {
			delete(d.revoked, id)
		}
	}
	return nil
}

func (d *MemoryTokenDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	exp, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !exp.After(d.now()) {
		delete(d.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
