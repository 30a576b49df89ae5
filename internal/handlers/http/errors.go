package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/handlers/dto"
	"github.com/rafabene/agendasaude-backend/internal/services"
)

// writeError converte erros de domínio em respostas RFC 7807
func writeError(c *gin.Context, logger ports.Logger, err error) {
	if verr, ok := domainerrors.AsValidationError(err); ok {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, verr))
		return
	}

	switch {
	case errors.Is(err, domainerrors.ErrProfessionalNotFound):
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "resource.professional"))
	case errors.Is(err, domainerrors.ErrConsultationNotFound):
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "resource.consultation"))
	case services.IsAuthError(err):
		writeUnauthorized(c, err)
	default:
		logger.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
		_ = c.Error(err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

// writeUnauthorized escreve 401 com a mensagem do erro de autenticação
func writeUnauthorized(c *gin.Context, err error) {
	detailKey := ""
	for _, sentinel := range []error{
		domainerrors.ErrInvalidCredentials,
		domainerrors.ErrInvalidToken,
		domainerrors.ErrTokenRevoked,
		domainerrors.ErrUserNotFound,
	} {
		if errors.Is(err, sentinel) {
			detailKey = sentinel.Error()
			break
		}
	}
	dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c, detailKey))
}

// bindJSON faz o bind do corpo e responde 400 em caso de falha
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.BindingError(err)))
		return false
	}
	return true
}

// bindQuery faz o bind da query string e responde 400 em caso de falha
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.BindingError(err)))
		return false
	}
	return true
}
