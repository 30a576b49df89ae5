package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
	"github.com/rafabene/agendasaude-backend/internal/handlers/dto"
	"github.com/rafabene/agendasaude-backend/internal/services"
)

// ConsultationHandler lida com requisições HTTP relacionadas a consultas
type ConsultationHandler struct {
	consultationService *services.ConsultationService
	publisher           ports.EventPublisher
	logger              ports.Logger
}

// NewConsultationHandler cria um novo ConsultationHandler
func NewConsultationHandler(consultationService *services.ConsultationService, publisher ports.EventPublisher, logger ports.Logger) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: consultationService,
		publisher:           publisher,
		logger:              logger,
	}
}

// ListConsultations lista consultas
//
//	@Summary	Lista consultas
//	@Tags		consultations
//	@Produce	json
//	@Security	BearerAuth
//	@Param		professional	query		string	false	"Filtra pelo ID do profissional"
//	@Param		page			query		int		false	"Página (a partir de 1)"
//	@Param		page_size		query		int		false	"Itens por página (máx. 100)"
//	@Success	200				{array}		dto.ConsultationResponse
//	@Failure	401				{object}	dto.ErrorResponse
//	@Router		/consultations [get]
func (h *ConsultationHandler) ListConsultations(c *gin.Context) {
	var query dto.ConsultationListQuery
	if !bindQuery(c, &query) {
		return
	}

	pagination := query.ToPagination()
	consultations, total, err := h.consultationService.ListConsultations(c.Request.Context(), repositories.ConsultationFilters{
		ProfessionalID: query.Professional,
		Pagination:     pagination,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse(dto.ToConsultationResponses(consultations), total, pagination))
}

// ListByProfessional lista as consultas de um profissional
//
//	@Summary		Consultas de um profissional
//	@Description	Profissional inexistente retorna lista vazia
//	@Tags			consultations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			professional_id	path		string	true	"ID do profissional"
//	@Param			status			query		string	false	"scheduled, completed ou cancelled"
//	@Param			page			query		int		false	"Página (a partir de 1)"
//	@Param			page_size		query		int		false	"Itens por página (máx. 100)"
//	@Success		200				{array}		dto.ConsultationResponse
//	@Failure		400				{object}	dto.ErrorResponse
//	@Failure		401				{object}	dto.ErrorResponse
//	@Router			/consultations/professional/{professional_id} [get]
func (h *ConsultationHandler) ListByProfessional(c *gin.Context) {
	var query dto.ConsultationsByProfessionalQuery
	if !bindQuery(c, &query) {
		return
	}

	pagination := query.ToPagination()
	consultations, total, err := h.consultationService.ListByProfessional(
		c.Request.Context(),
		c.Param("professional_id"),
		query.Status,
		pagination,
	)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse(dto.ToConsultationResponses(consultations), total, pagination))
}

// CreateConsultation agenda uma nova consulta
//
//	@Summary	Agenda consulta
//	@Tags		consultations
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateConsultationRequest	true	"Dados da consulta"
//	@Success	201		{object}	dto.ConsultationResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/consultations [post]
func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	var req dto.CreateConsultationRequest
	if !bindJSON(c, &req) {
		return
	}

	input, verr := req.ToInput()
	if verr != nil {
		writeError(c, h.logger, verr)
		return
	}

	consultation, err := h.consultationService.CreateConsultation(c.Request.Context(), input)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	response := dto.ToConsultationResponse(consultation)
	h.publisher.Publish(ports.EventConsultationCreated, response)
	c.JSON(http.StatusCreated, response)
}

// GetConsultation busca uma consulta por ID
//
//	@Summary	Busca consulta
//	@Tags		consultations
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID da consulta"
//	@Success	200	{object}	dto.ConsultationResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/consultations/{id} [get]
func (h *ConsultationHandler) GetConsultation(c *gin.Context) {
	consultation, err := h.consultationService.GetConsultation(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultationResponse(consultation))
}

// ReplaceConsultation atualiza todos os campos de uma consulta
//
//	@Summary	Atualiza consulta
//	@Tags		consultations
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"ID da consulta"
//	@Param		request	body		dto.ReplaceConsultationRequest	true	"Dados da consulta"
//	@Success	200		{object}	dto.ConsultationResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/consultations/{id} [put]
func (h *ConsultationHandler) ReplaceConsultation(c *gin.Context) {
	var req dto.ReplaceConsultationRequest
	if !bindJSON(c, &req) {
		return
	}

	patch, verr := req.ToPatch()
	if verr != nil {
		writeError(c, h.logger, verr)
		return
	}
	h.update(c, patch)
}

// UpdateConsultation atualiza parcialmente uma consulta
//
//	@Summary	Atualiza consulta parcialmente
//	@Tags		consultations
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"ID da consulta"
//	@Param		request	body		dto.UpdateConsultationRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.ConsultationResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/consultations/{id} [patch]
func (h *ConsultationHandler) UpdateConsultation(c *gin.Context) {
	var req dto.UpdateConsultationRequest
	if !bindJSON(c, &req) {
		return
	}

	patch, verr := req.ToPatch()
	if verr != nil {
		writeError(c, h.logger, verr)
		return
	}
	h.update(c, patch)
}

func (h *ConsultationHandler) update(c *gin.Context, patch services.ConsultationPatch) {
	consultation, err := h.consultationService.UpdateConsultation(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	response := dto.ToConsultationResponse(consultation)
	h.publisher.Publish(ports.EventConsultationUpdated, response)
	c.JSON(http.StatusOK, response)
}

// DeleteConsultation remove uma consulta
//
//	@Summary	Remove consulta
//	@Tags		consultations
//	@Security	BearerAuth
//	@Param		id	path	string	true	"ID da consulta"
//	@Success	204
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/consultations/{id} [delete]
func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	id := c.Param("id")

	if err := h.consultationService.DeleteConsultation(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.publisher.Publish(ports.EventConsultationDeleted, gin.H{"id": id})
	c.Status(http.StatusNoContent)
}
