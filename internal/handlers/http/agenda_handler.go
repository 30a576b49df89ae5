package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
)

// AgendaStreamer atende conexões websocket do feed da agenda
type AgendaStreamer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

// AgendaHandler expõe o feed em tempo real de mudanças na agenda
type AgendaHandler struct {
	streamer AgendaStreamer
	logger   ports.Logger
}

// NewAgendaHandler cria um novo AgendaHandler
func NewAgendaHandler(streamer AgendaStreamer, logger ports.Logger) *AgendaHandler {
	return &AgendaHandler{
		streamer: streamer,
		logger:   logger,
	}
}

// Subscribe faz o upgrade para websocket e passa a receber eventos {type, data}
//
//	@Summary		Feed da agenda
//	@Description	Websocket com eventos consultation.created, consultation.updated, consultation.deleted e professional.deleted
//	@Tags			agenda
//	@Security		BearerAuth
//	@Param			access_token	query	string	false	"Token de acesso (alternativa ao header)"
//	@Success		101
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/ws/agenda [get]
func (h *AgendaHandler) Subscribe(c *gin.Context) {
	// O upgrader já responde com erro HTTP quando o handshake falha
	if err := h.streamer.ServeWS(c.Writer, c.Request); err != nil {
		h.logger.Warn("websocket subscription failed", "error", err)
	}
}
