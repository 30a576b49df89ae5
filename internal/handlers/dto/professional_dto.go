package dto

import (
	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	"github.com/rafabene/agendasaude-backend/internal/services"
)

// CreateProfessionalRequest representa a requisição para criar um profissional.
// name_social e profession vazios são rejeitados pela validação de domínio.
type CreateProfessionalRequest struct {
	NameSocial string `json:"name_social" binding:"max=255" example:"Alex"`
	Profession string `json:"profession" binding:"max=150" example:"Psicólogo"`
	Address    string `json:"address" example:"Rua das Flores, 123"`
	Contact    string `json:"contact" binding:"max=100" example:"alex@exemplo.com"`
}

// ToInput converte a requisição para o input do service
func (r CreateProfessionalRequest) ToInput() services.ProfessionalInput {
	return services.ProfessionalInput{
		NameSocial: r.NameSocial,
		Profession: r.Profession,
		Address:    r.Address,
		Contact:    r.Contact,
	}
}

// ReplaceProfessionalRequest representa a atualização completa (PUT)
type ReplaceProfessionalRequest struct {
	NameSocial *string `json:"name_social" binding:"required,max=255"`
	Profession *string `json:"profession" binding:"required,max=150"`
	Address    *string `json:"address"`
	Contact    *string `json:"contact" binding:"omitempty,max=100"`
}

// ToPatch converte a requisição para o patch do service
func (r ReplaceProfessionalRequest) ToPatch() services.ProfessionalPatch {
	return services.ProfessionalPatch{
		NameSocial: r.NameSocial,
		Profession: r.Profession,
		Address:    r.Address,
		Contact:    r.Contact,
	}
}

// UpdateProfessionalRequest representa a atualização parcial (PATCH)
type UpdateProfessionalRequest struct {
	NameSocial *string `json:"name_social" binding:"omitempty,max=255"`
	Profession *string `json:"profession" binding:"omitempty,max=150"`
	Address    *string `json:"address"`
	Contact    *string `json:"contact" binding:"omitempty,max=100"`
}

// ToPatch converte a requisição para o patch do service
func (r UpdateProfessionalRequest) ToPatch() services.ProfessionalPatch {
	return services.ProfessionalPatch{
		NameSocial: r.NameSocial,
		Profession: r.Profession,
		Address:    r.Address,
		Contact:    r.Contact,
	}
}

// ProfessionalListQuery são os filtros aceitos na listagem de profissionais
type ProfessionalListQuery struct {
	Search string `form:"search"`
	PaginationQuery
}

// ProfessionalResponse representa a resposta de um profissional
type ProfessionalResponse struct {
	ID         string `json:"id" example:"3f0e4a6c-1b2d-4c5e-8f90-a1b2c3d4e5f6"`
	NameSocial string `json:"name_social" example:"Alex"`
	Profession string `json:"profession" example:"Psicólogo"`
	Address    string `json:"address" example:"Rua das Flores, 123"`
	Contact    string `json:"contact" example:"alex@exemplo.com"`
}

// ToProfessionalResponse converte uma entidade Professional para ProfessionalResponse
func ToProfessionalResponse(p *entities.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:         p.ID,
		NameSocial: p.NameSocial,
		Profession: p.Profession,
		Address:    p.Address,
		Contact:    p.Contact,
	}
}

// ToProfessionalResponses converte uma lista de entidades Professional
func ToProfessionalResponses(professionals []*entities.Professional) []ProfessionalResponse {
	responses := make([]ProfessionalResponse, len(professionals))
	for i, p := range professionals {
		responses[i] = ToProfessionalResponse(p)
	}
	return responses
}
