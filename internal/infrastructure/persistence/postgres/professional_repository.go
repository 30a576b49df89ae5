package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
)

// likeEscaper faz o termo de busca casar literalmente dentro de LIKE ... ESCAPE '\'
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ProfessionalRepository implementa repositories.ProfessionalRepository
type ProfessionalRepository struct {
	db *gorm.DB
}

// NewProfessionalRepository cria um novo ProfessionalRepository
func NewProfessionalRepository(db *gorm.DB) repositories.ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

func (r *ProfessionalRepository) Create(ctx context.Context, professional *entities.Professional) error {
	if professional.ID == "" {
		professional.ID = uuid.NewString()
	}
	model := r.toModel(professional)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return err
	}

	professional.CreatedAt = time.UnixMilli(model.CreatedAt)
	professional.UpdatedAt = time.UnixMilli(model.UpdatedAt)
	return nil
}

func (r *ProfessionalRepository) FindByID(ctx context.Context, id string) (*entities.Professional, error) {
	// IDs fora do formato UUID nunca existem (e quebrariam a query no PostgreSQL)
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var model ProfessionalModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ProfessionalRepository) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	var count int64

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&ProfessionalModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ProfessionalRepository) Update(ctx context.Context, professional *entities.Professional) error {
	now := time.Now()

	db := dbFromContext(ctx, r.db)
	result := db.Model(&ProfessionalModel{}).
		Where("id = ?", professional.ID).
		Updates(map[string]interface{}{
			"name_social": professional.NameSocial,
			"profession":  professional.Profession,
			"address":     professional.Address,
			"contact":     professional.Contact,
			"updated_at":  now.UnixMilli(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProfessionalNotFound
	}

	professional.UpdatedAt = time.UnixMilli(now.UnixMilli())
	return nil
}

// Delete remove o profissional; as consultas caem pela foreign key ON DELETE CASCADE
func (r *ProfessionalRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domainerrors.ErrProfessionalNotFound
	}

	db := dbFromContext(ctx, r.db)
	result := db.Where("id = ?", id).Delete(&ProfessionalModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProfessionalNotFound
	}
	return nil
}

func (r *ProfessionalRepository) List(ctx context.Context, filters repositories.ProfessionalFilters) ([]*entities.Professional, int64, error) {
	var models []*ProfessionalModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ProfessionalModel{})

	// Aplicar filtros
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where(
			`LOWER(name_social) LIKE ? ESCAPE '\' OR LOWER(profession) LIKE ? ESCAPE '\' OR LOWER(contact) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at ASC").Order("id ASC")

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

// Conversores
func (r *ProfessionalRepository) toModel(p *entities.Professional) *ProfessionalModel {
	return &ProfessionalModel{
		ID:         p.ID,
		NameSocial: p.NameSocial,
		Profession: p.Profession,
		Address:    p.Address,
		Contact:    p.Contact,
	}
}

func (r *ProfessionalRepository) toEntity(model *ProfessionalModel) *entities.Professional {
	return &entities.Professional{
		ID:         model.ID,
		NameSocial: model.NameSocial,
		Profession: model.Profession,
		Address:    model.Address,
		Contact:    model.Contact,
		CreatedAt:  time.UnixMilli(model.CreatedAt),
		UpdatedAt:  time.UnixMilli(model.UpdatedAt),
	}
}

func (r *ProfessionalRepository) toEntities(models []*ProfessionalModel) []*entities.Professional {
	result := make([]*entities.Professional, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
