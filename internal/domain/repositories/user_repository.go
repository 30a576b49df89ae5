package repositories

import (
	"context"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
}
