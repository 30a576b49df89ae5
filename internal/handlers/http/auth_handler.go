package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/handlers/dto"
	"github.com/rafabene/agendasaude-backend/internal/handlers/middleware"
	"github.com/rafabene/agendasaude-backend/internal/services"
)

// AuthHandler lida com emissão, renovação e revogação de tokens
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// ObtainToken troca usuário e senha por um par de tokens
//
//	@Summary	Obtém tokens
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.TokenRequest	true	"Credenciais"
//	@Success	200		{object}	dto.TokenPairResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/auth/token [post]
func (h *AuthHandler) ObtainToken(c *gin.Context) {
	var req dto.TokenRequest
	if !bindJSON(c, &req) {
		return
	}

	pair, err := h.authService.ObtainToken(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// RefreshToken emite um novo token de acesso
//
//	@Summary	Renova token de acesso
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RefreshRequest	true	"Token de renovação"
//	@Success	200		{object}	dto.AccessTokenResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/auth/token/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	access, err := h.authService.RefreshToken(c.Request.Context(), req.Refresh)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{Access: access})
}

// Logout revoga o token de acesso apresentado
//
//	@Summary	Revoga token
//	@Tags		auth
//	@Security	BearerAuth
//	@Success	204
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		writeError(c, h.logger, domainerrors.ErrUnauthorized)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Unauthorized é usado pelo middleware de autenticação para responder 401
func Unauthorized(c *gin.Context, err error) {
	writeUnauthorized(c, err)
}
