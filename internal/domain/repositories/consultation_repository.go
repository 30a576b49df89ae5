package repositories

import (
	"context"
	"time"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	"github.com/rafabene/agendasaude-backend/internal/domain/valueobjects"
)

// ConsultationRepository define a interface para persistência de consultas
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entities.Consultation) error
	FindByID(ctx context.Context, id string) (*entities.Consultation, error)
	// FindBySlot busca outra consulta do profissional no mesmo horário, ignorando excludeID
	FindBySlot(ctx context.Context, professionalID string, scheduledAt time.Time, excludeID string) (*entities.Consultation, error)
	Update(ctx context.Context, consultation *entities.Consultation) error
	Delete(ctx context.Context, id string) error
	DeleteByProfessional(ctx context.Context, professionalID string) (int64, error)
	List(ctx context.Context, filters ConsultationFilters) ([]*entities.Consultation, int64, error)
}

// ConsultationFilters contém filtros para listagem de consultas
type ConsultationFilters struct {
	ProfessionalID string
	Status         *valueobjects.ConsultationStatus
	Pagination
}
