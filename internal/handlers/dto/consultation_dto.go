package dto

import (
	"strings"
	"time"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/services"
)

// Formatos aceitos para datetime; sem fuso o horário é tratado como UTC
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDatetime interpreta o campo datetime das requisições
func ParseDatetime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateConsultationRequest representa a requisição para agendar uma consulta
type CreateConsultationRequest struct {
	Datetime     string  `json:"datetime" binding:"required" example:"2030-05-20T14:30:00Z"`
	Professional string  `json:"professional" binding:"required" example:"3f0e4a6c-1b2d-4c5e-8f90-a1b2c3d4e5f6"`
	Notes        string  `json:"notes" example:"Primeira consulta"`
	Status       *string `json:"status" example:"scheduled"`
}

// ToInput converte a requisição para o input do service
func (r CreateConsultationRequest) ToInput() (services.ConsultationInput, *domainerrors.ValidationError) {
	scheduledAt, ok := ParseDatetime(r.Datetime)
	if !ok {
		return services.ConsultationInput{}, domainerrors.FieldError("datetime", domainerrors.MsgFieldInvalid)
	}

	return services.ConsultationInput{
		ScheduledAt:    scheduledAt,
		ProfessionalID: strings.TrimSpace(r.Professional),
		Notes:          r.Notes,
		Status:         r.Status,
	}, nil
}

// ReplaceConsultationRequest representa a atualização completa (PUT)
type ReplaceConsultationRequest struct {
	Datetime     *string `json:"datetime" binding:"required"`
	Professional *string `json:"professional" binding:"required"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
}

// UpdateConsultationRequest representa a atualização parcial (PATCH)
type UpdateConsultationRequest struct {
	Datetime     *string `json:"datetime"`
	Professional *string `json:"professional"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
}

// ToPatch converte a requisição para o patch do service
func (r UpdateConsultationRequest) ToPatch() (services.ConsultationPatch, *domainerrors.ValidationError) {
	patch := services.ConsultationPatch{
		Notes:  r.Notes,
		Status: r.Status,
	}

	if r.Datetime != nil {
		scheduledAt, ok := ParseDatetime(*r.Datetime)
		if !ok {
			return patch, domainerrors.FieldError("datetime", domainerrors.MsgFieldInvalid)
		}
		patch.ScheduledAt = &scheduledAt
	}

	if r.Professional != nil {
		professionalID := strings.TrimSpace(*r.Professional)
		patch.ProfessionalID = &professionalID
	}

	return patch, nil
}

// ToPatch converte a requisição para o patch do service
func (r ReplaceConsultationRequest) ToPatch() (services.ConsultationPatch, *domainerrors.ValidationError) {
	return UpdateConsultationRequest(r).ToPatch()
}

// ConsultationListQuery são os filtros aceitos na listagem de consultas
type ConsultationListQuery struct {
	Professional string `form:"professional"`
	PaginationQuery
}

// ConsultationsByProfessionalQuery são os filtros da agenda de um profissional
type ConsultationsByProfessionalQuery struct {
	Status string `form:"status"`
	PaginationQuery
}

// ConsultationResponse representa a resposta de uma consulta
type ConsultationResponse struct {
	ID           string    `json:"id" example:"9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"`
	Datetime     time.Time `json:"datetime" example:"2030-05-20T14:30:00Z"`
	Professional string    `json:"professional" example:"3f0e4a6c-1b2d-4c5e-8f90-a1b2c3d4e5f6"`
	Notes        string    `json:"notes" example:"Primeira consulta"`
	Status       string    `json:"status" example:"scheduled"`
}

// ToConsultationResponse converte uma entidade Consultation para ConsultationResponse
func ToConsultationResponse(c *entities.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:           c.ID,
		Datetime:     c.ScheduledAt.UTC(),
		Professional: c.ProfessionalID,
		Notes:        c.Notes,
		Status:       c.Status.String(),
	}
}

// ToConsultationResponses converte uma lista de entidades Consultation
func ToConsultationResponses(consultations []*entities.Consultation) []ConsultationResponse {
	responses := make([]ConsultationResponse, len(consultations))
	for i, c := range consultations {
		responses[i] = ToConsultationResponse(c)
	}
	return responses
}
