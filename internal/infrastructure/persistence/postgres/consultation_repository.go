package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
	"github.com/rafabene/agendasaude-backend/internal/domain/valueobjects"
)

// ConsultationRepository implementa repositories.ConsultationRepository
type ConsultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository cria um novo ConsultationRepository
func NewConsultationRepository(db *gorm.DB) repositories.ConsultationRepository {
	return &ConsultationRepository{db: db}
}

// Create insere a consulta. Um conflito no índice único de horário vira
// DuplicateConsultationError, mesmo quando duas requisições concorrentes
// passaram pela checagem prévia do service.
func (r *ConsultationRepository) Create(ctx context.Context, consultation *entities.Consultation) error {
	if consultation.ID == "" {
		consultation.ID = uuid.NewString()
	}
	model := r.toModel(consultation)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateConsultationError(err)
	}

	consultation.ScheduledAt = model.ScheduledAt
	consultation.CreatedAt = time.UnixMilli(model.CreatedAt)
	consultation.UpdatedAt = time.UnixMilli(model.UpdatedAt)
	return nil
}

func (r *ConsultationRepository) FindByID(ctx context.Context, id string) (*entities.Consultation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var model ConsultationModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ConsultationRepository) FindBySlot(ctx context.Context, professionalID string, scheduledAt time.Time, excludeID string) (*entities.Consultation, error) {
	if _, err := uuid.Parse(professionalID); err != nil {
		return nil, nil
	}

	var model ConsultationModel

	db := dbFromContext(ctx, r.db)
	query := db.Where("professional_id = ? AND scheduled_at = ?", professionalID, entities.NormalizeSlot(scheduledAt))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ConsultationRepository) Update(ctx context.Context, consultation *entities.Consultation) error {
	now := time.Now()
	scheduledAt := entities.NormalizeSlot(consultation.ScheduledAt)

	db := dbFromContext(ctx, r.db)
	result := db.Model(&ConsultationModel{}).
		Where("id = ?", consultation.ID).
		Updates(map[string]interface{}{
			"professional_id": consultation.ProfessionalID,
			"scheduled_at":    scheduledAt,
			"notes":           consultation.Notes,
			"status":          statusOrDefault(consultation.Status),
			"updated_at":      now.UnixMilli(),
		})
	if result.Error != nil {
		return translateConsultationError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrConsultationNotFound
	}

	consultation.ScheduledAt = scheduledAt
	consultation.UpdatedAt = time.UnixMilli(now.UnixMilli())
	return nil
}

func (r *ConsultationRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domainerrors.ErrConsultationNotFound
	}

	db := dbFromContext(ctx, r.db)
	result := db.Where("id = ?", id).Delete(&ConsultationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrConsultationNotFound
	}
	return nil
}

func (r *ConsultationRepository) DeleteByProfessional(ctx context.Context, professionalID string) (int64, error) {
	if _, err := uuid.Parse(professionalID); err != nil {
		return 0, nil
	}

	db := dbFromContext(ctx, r.db)
	result := db.Where("professional_id = ?", professionalID).Delete(&ConsultationModel{})
	return result.RowsAffected, result.Error
}

func (r *ConsultationRepository) List(ctx context.Context, filters repositories.ConsultationFilters) ([]*entities.Consultation, int64, error) {
	var models []*ConsultationModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ConsultationModel{})

	// Aplicar filtros
	if filters.ProfessionalID != "" {
		if _, err := uuid.Parse(filters.ProfessionalID); err != nil {
			return []*entities.Consultation{}, 0, nil
		}
		query = query.Where("professional_id = ?", filters.ProfessionalID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("scheduled_at ASC").Order("id ASC")

	// Paginação
	if filters.Enabled() {
		p := filters.Normalized()
		query = query.Limit(p.PageSize).Offset(p.Offset())
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return r.toEntities(models), total, nil
}

func statusOrDefault(status valueobjects.ConsultationStatus) string {
	if status.IsZero() {
		return valueobjects.StatusScheduled.String()
	}
	return status.String()
}

// Conversores
func (r *ConsultationRepository) toModel(c *entities.Consultation) *ConsultationModel {
	return &ConsultationModel{
		ID:             c.ID,
		ProfessionalID: c.ProfessionalID,
		ScheduledAt:    entities.NormalizeSlot(c.ScheduledAt),
		Notes:          c.Notes,
		Status:         statusOrDefault(c.Status),
	}
}

func (r *ConsultationRepository) toEntity(model *ConsultationModel) *entities.Consultation {
	// Valores inválidos no banco são tratados como agendados
	status, err := valueobjects.NewConsultationStatus(model.Status)
	if err != nil {
		status = valueobjects.StatusScheduled
	}

	return &entities.Consultation{
		ID:             model.ID,
		ProfessionalID: model.ProfessionalID,
		ScheduledAt:    model.ScheduledAt.UTC(),
		Notes:          model.Notes,
		Status:         status,
		CreatedAt:      time.UnixMilli(model.CreatedAt),
		UpdatedAt:      time.UnixMilli(model.UpdatedAt),
	}
}

func (r *ConsultationRepository) toEntities(models []*ConsultationModel) []*entities.Consultation {
	result := make([]*entities.Consultation, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
