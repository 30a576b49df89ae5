package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/config"
)

// NewRedisClient conecta ao Redis a partir de REDIS_URL e testa a conexão
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log ports.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("redis connected successfully", "addr", opts.Addr, "db", opts.DB)

	return client, nil
}
