package services

import (
	"context"
	"time"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	"github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
	"github.com/rafabene/agendasaude-backend/internal/domain/valueobjects"
)

// ConsultationService contém a lógica de negócio para consultas
type ConsultationService struct {
	consultationRepo repositories.ConsultationRepository
	professionalRepo repositories.ProfessionalRepository
	uow              ports.UnitOfWork
	logger           ports.Logger
	now              func() time.Time
}

// NewConsultationService cria um novo ConsultationService
func NewConsultationService(
	consultationRepo repositories.ConsultationRepository,
	professionalRepo repositories.ProfessionalRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ConsultationService {
	return &ConsultationService{
		consultationRepo: consultationRepo,
		professionalRepo: professionalRepo,
		uow:              uow,
		logger:           logger,
		now:              time.Now,
	}
}

// WithClock substitui o relógio usado na validação de horários (testes)
func (s *ConsultationService) WithClock(now func() time.Time) *ConsultationService {
	s.now = now
	return s
}

// ConsultationInput representa os dados para criar uma consulta
type ConsultationInput struct {
	ScheduledAt    time.Time
	ProfessionalID string
	Notes          string
	Status         *string // nil = scheduled
}

// ConsultationPatch representa uma atualização; campos nil ficam inalterados
type ConsultationPatch struct {
	ScheduledAt    *time.Time
	ProfessionalID *string
	Notes          *string
	Status         *string
}

// CreateConsultation valida e agenda uma nova consulta
func (s *ConsultationService) CreateConsultation(ctx context.Context, input ConsultationInput) (*entities.Consultation, error) {
	consultation := &entities.Consultation{
		ScheduledAt:    entities.NormalizeSlot(input.ScheduledAt),
		ProfessionalID: input.ProfessionalID,
		Notes:          input.Notes,
		Status:         valueobjects.StatusScheduled,
	}

	verr := errors.NewValidationError()
	if input.Status != nil {
		s.applyStatus(consultation, *input.Status, verr)
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.validate(txCtx, consultation, verr, true, true); err != nil {
			return err
		}
		return s.consultationRepo.Create(txCtx, consultation)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("consultation created",
		"consultation_id", consultation.ID,
		"professional_id", consultation.ProfessionalID,
	)
	return consultation, nil
}

// GetConsultation busca uma consulta por ID
func (s *ConsultationService) GetConsultation(ctx context.Context, id string) (*entities.Consultation, error) {
	consultation, err := s.consultationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, errors.ErrConsultationNotFound
	}
	return consultation, nil
}

// ListConsultations lista consultas com filtros; retorna também o total sem paginação
func (s *ConsultationService) ListConsultations(ctx context.Context, filters repositories.ConsultationFilters) ([]*entities.Consultation, int64, error) {
	return s.consultationRepo.List(ctx, filters)
}

// ListByProfessional lista as consultas de um profissional, opcionalmente filtradas por status.
// Profissional inexistente resulta em lista vazia.
func (s *ConsultationService) ListByProfessional(ctx context.Context, professionalID, status string, pagination repositories.Pagination) ([]*entities.Consultation, int64, error) {
	filters := repositories.ConsultationFilters{
		ProfessionalID: professionalID,
		Pagination:     pagination,
	}

	if status != "" {
		st, err := valueobjects.NewConsultationStatus(status)
		if err != nil {
			verr := errors.NewValidationError()
			verr.AddWithParams("status", errors.MsgStatusInvalid, map[string]interface{}{"Value": status})
			return nil, 0, verr
		}
		filters.Status = &st
	}

	return s.consultationRepo.List(ctx, filters)
}

// UpdateConsultation aplica o patch e revalida. O horário só é checado quando
// informado, assim como o profissional; a unicidade é sempre checada.
func (s *ConsultationService) UpdateConsultation(ctx context.Context, id string, patch ConsultationPatch) (*entities.Consultation, error) {
	var consultation *entities.Consultation

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		consultation, err = s.GetConsultation(txCtx, id)
		if err != nil {
			return err
		}

		verr := errors.NewValidationError()
		if patch.ScheduledAt != nil {
			consultation.ScheduledAt = entities.NormalizeSlot(*patch.ScheduledAt)
		}
		if patch.ProfessionalID != nil {
			consultation.ProfessionalID = *patch.ProfessionalID
		}
		if patch.Notes != nil {
			consultation.Notes = *patch.Notes
		}
		if patch.Status != nil {
			s.applyStatus(consultation, *patch.Status, verr)
		}

		if err := s.validate(txCtx, consultation, verr, patch.ScheduledAt != nil, patch.ProfessionalID != nil); err != nil {
			return err
		}
		return s.consultationRepo.Update(txCtx, consultation)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("consultation updated", "consultation_id", consultation.ID)
	return consultation, nil
}

// DeleteConsultation remove uma consulta
func (s *ConsultationService) DeleteConsultation(ctx context.Context, id string) error {
	if err := s.consultationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("consultation deleted", "consultation_id", id)
	return nil
}

func (s *ConsultationService) applyStatus(consultation *entities.Consultation, raw string, verr *errors.ValidationError) {
	status, err := valueobjects.NewConsultationStatus(raw)
	if err != nil {
		verr.AddWithParams("status", errors.MsgStatusInvalid, map[string]interface{}{"Value": raw})
		return
	}
	consultation.Status = status
}

// validate roda as checagens de campo juntas e, só se passarem, a checagem de horário duplicado
func (s *ConsultationService) validate(
	ctx context.Context,
	consultation *entities.Consultation,
	verr *errors.ValidationError,
	checkSchedule, checkProfessional bool,
) error {
	if checkSchedule {
		verr.Merge(entities.ValidateSchedule(consultation.ScheduledAt, s.now()))
	}

	if checkProfessional {
		exists, err := s.professionalRepo.Exists(ctx, consultation.ProfessionalID)
		if err != nil {
			return err
		}
		if !exists {
			verr.Add("professional", errors.MsgProfessionalNotFound)
		}
	}

	if verr.HasErrors() {
		return verr
	}

	existing, err := s.consultationRepo.FindBySlot(ctx, consultation.ProfessionalID, consultation.ScheduledAt, consultation.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.DuplicateConsultationError()
	}

	return nil
}
