package repositories

import (
	"context"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
)

// ProfessionalRepository define a interface para persistência de profissionais
type ProfessionalRepository interface {
	Create(ctx context.Context, professional *entities.Professional) error
	FindByID(ctx context.Context, id string) (*entities.Professional, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, professional *entities.Professional) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters ProfessionalFilters) ([]*entities.Professional, int64, error)
}

// ProfessionalFilters contém filtros para listagem de profissionais
type ProfessionalFilters struct {
	Search string // busca em name_social, profession e contact
	Pagination
}
