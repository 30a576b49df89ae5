package services

import (
	"context"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	"github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
)

// ProfessionalService contém a lógica de negócio para profissionais
type ProfessionalService struct {
	professionalRepo repositories.ProfessionalRepository
	consultationRepo repositories.ConsultationRepository
	uow              ports.UnitOfWork
	logger           ports.Logger
}

// NewProfessionalService cria um novo ProfessionalService
func NewProfessionalService(
	professionalRepo repositories.ProfessionalRepository,
	consultationRepo repositories.ConsultationRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ProfessionalService {
	return &ProfessionalService{
		professionalRepo: professionalRepo,
		consultationRepo: consultationRepo,
		uow:              uow,
		logger:           logger,
	}
}

// ProfessionalInput representa os dados para criar um profissional
type ProfessionalInput struct {
	NameSocial string
	Profession string
	Address    string
	Contact    string
}

// ProfessionalPatch representa uma atualização; campos nil ficam inalterados
type ProfessionalPatch struct {
	NameSocial *string
	Profession *string
	Address    *string
	Contact    *string
}

// CreateProfessional valida e cria um novo profissional
func (s *ProfessionalService) CreateProfessional(ctx context.Context, input ProfessionalInput) (*entities.Professional, error) {
	professional := &entities.Professional{
		NameSocial: input.NameSocial,
		Profession: input.Profession,
		Address:    input.Address,
		Contact:    input.Contact,
	}

	professional.Normalize()
	if err := professional.Validate(); err != nil {
		return nil, err
	}

	if err := s.professionalRepo.Create(ctx, professional); err != nil {
		s.logger.Error("failed to create professional", "error", err)
		return nil, err
	}

	s.logger.Info("professional created", "professional_id", professional.ID)
	return professional, nil
}

// GetProfessional busca um profissional por ID
func (s *ProfessionalService) GetProfessional(ctx context.Context, id string) (*entities.Professional, error) {
	professional, err := s.professionalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, errors.ErrProfessionalNotFound
	}
	return professional, nil
}

// ListProfessionals lista profissionais com filtros; retorna também o total sem paginação
func (s *ProfessionalService) ListProfessionals(ctx context.Context, filters repositories.ProfessionalFilters) ([]*entities.Professional, int64, error) {
	return s.professionalRepo.List(ctx, filters)
}

// UpdateProfessional aplica o patch e revalida o profissional inteiro
func (s *ProfessionalService) UpdateProfessional(ctx context.Context, id string, patch ProfessionalPatch) (*entities.Professional, error) {
	professional, err := s.GetProfessional(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.NameSocial != nil {
		professional.NameSocial = *patch.NameSocial
	}
	if patch.Profession != nil {
		professional.Profession = *patch.Profession
	}
	if patch.Address != nil {
		professional.Address = *patch.Address
	}
	if patch.Contact != nil {
		professional.Contact = *patch.Contact
	}

	professional.Normalize()
	if err := professional.Validate(); err != nil {
		return nil, err
	}

	if err := s.professionalRepo.Update(ctx, professional); err != nil {
		return nil, err
	}

	s.logger.Info("professional updated", "professional_id", professional.ID)
	return professional, nil
}

// DeleteProfessional remove o profissional e todas as suas consultas numa transação
func (s *ProfessionalService) DeleteProfessional(ctx context.Context, id string) error {
	var removed int64

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.professionalRepo.Exists(txCtx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errors.ErrProfessionalNotFound
		}

		removed, err = s.consultationRepo.DeleteByProfessional(txCtx, id)
		if err != nil {
			return err
		}

		return s.professionalRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("professional deleted", "professional_id", id, "consultations_removed", removed)
	return nil
}
