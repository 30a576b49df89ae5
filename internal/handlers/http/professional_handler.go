package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
	"github.com/rafabene/agendasaude-backend/internal/handlers/dto"
	"github.com/rafabene/agendasaude-backend/internal/services"
)

// ProfessionalHandler lida com requisições HTTP relacionadas a profissionais
type ProfessionalHandler struct {
	professionalService *services.ProfessionalService
	publisher           ports.EventPublisher
	logger              ports.Logger
}

// NewProfessionalHandler cria um novo ProfessionalHandler
func NewProfessionalHandler(professionalService *services.ProfessionalService, publisher ports.EventPublisher, logger ports.Logger) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalService: professionalService,
		publisher:           publisher,
		logger:              logger,
	}
}

// ListProfessionals lista profissionais
//
//	@Summary		Lista profissionais
//	@Description	Sem page retorna um array; com page retorna {count, page, page_size, results}
//	@Tags			professionals
//	@Produce		json
//	@Security		BearerAuth
//	@Param			search		query		string	false	"Busca em name_social, profession e contact"
//	@Param			page		query		int		false	"Página (a partir de 1)"
//	@Param			page_size	query		int		false	"Itens por página (máx. 100)"
//	@Success		200			{array}		dto.ProfessionalResponse
//	@Failure		401			{object}	dto.ErrorResponse
//	@Router			/professionals [get]
func (h *ProfessionalHandler) ListProfessionals(c *gin.Context) {
	var query dto.ProfessionalListQuery
	if !bindQuery(c, &query) {
		return
	}

	pagination := query.ToPagination()
	professionals, total, err := h.professionalService.ListProfessionals(c.Request.Context(), repositories.ProfessionalFilters{
		Search:     query.Search,
		Pagination: pagination,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse(dto.ToProfessionalResponses(professionals), total, pagination))
}

// CreateProfessional cria um novo profissional
//
//	@Summary	Cria profissional
//	@Tags		professionals
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateProfessionalRequest	true	"Dados do profissional"
//	@Success	201		{object}	dto.ProfessionalResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/professionals [post]
func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	var req dto.CreateProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}

	professional, err := h.professionalService.CreateProfessional(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfessionalResponse(professional))
}

// GetProfessional busca um profissional por ID
//
//	@Summary	Busca profissional
//	@Tags		professionals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do profissional"
//	@Success	200	{object}	dto.ProfessionalResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/professionals/{id} [get]
func (h *ProfessionalHandler) GetProfessional(c *gin.Context) {
	professional, err := h.professionalService.GetProfessional(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

// ReplaceProfessional atualiza todos os campos de um profissional
//
//	@Summary	Atualiza profissional
//	@Tags		professionals
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"ID do profissional"
//	@Param		request	body		dto.ReplaceProfessionalRequest	true	"Dados do profissional"
//	@Success	200		{object}	dto.ProfessionalResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/professionals/{id} [put]
func (h *ProfessionalHandler) ReplaceProfessional(c *gin.Context) {
	var req dto.ReplaceProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}
	h.update(c, req.ToPatch())
}

// UpdateProfessional atualiza parcialmente um profissional
//
//	@Summary	Atualiza profissional parcialmente
//	@Tags		professionals
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"ID do profissional"
//	@Param		request	body		dto.UpdateProfessionalRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.ProfessionalResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/professionals/{id} [patch]
func (h *ProfessionalHandler) UpdateProfessional(c *gin.Context) {
	var req dto.UpdateProfessionalRequest
	if !bindJSON(c, &req) {
		return
	}
	h.update(c, req.ToPatch())
}

func (h *ProfessionalHandler) update(c *gin.Context, patch services.ProfessionalPatch) {
	professional, err := h.professionalService.UpdateProfessional(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

// DeleteProfessional remove um profissional e suas consultas
//
//	@Summary	Remove profissional
//	@Tags		professionals
//	@Security	BearerAuth
//	@Param		id	path	string	true	"ID do profissional"
//	@Success	204
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/professionals/{id} [delete]
func (h *ProfessionalHandler) DeleteProfessional(c *gin.Context) {
	id := c.Param("id")

	if err := h.professionalService.DeleteProfessional(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.publisher.Publish(ports.EventProfessionalDeleted, gin.H{"id": id})
	c.Status(http.StatusNoContent)
}
