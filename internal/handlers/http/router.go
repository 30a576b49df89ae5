package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/handlers/dto"
	"github.com/rafabene/agendasaude-backend/internal/handlers/middleware"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/i18n"
)

// RouterConfig reúne as dependências das rotas
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins string
	I18n           *i18n.Service
	Logger         ports.Logger
	Auth           *middleware.AuthMiddleware
	Health         *HealthHandler
	AuthHandler    *AuthHandler
	Professionals  *ProfessionalHandler
	Consultations  *ConsultationHandler
	Agenda         *AgendaHandler
}

// NewRouter monta o engine Gin com middlewares e rotas da API
func NewRouter(cfg RouterConfig) *gin.Engine {
	dto.RegisterJSONTagNames()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(cfg.I18n)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", cfg.Health.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/token", cfg.AuthHandler.ObtainToken)
			auth.POST("/token/refresh", cfg.AuthHandler.RefreshToken)
			auth.POST("/logout", cfg.Auth.RequireAuth(), cfg.AuthHandler.Logout)
		}

		protected := v1.Group("", cfg.Auth.RequireAuth())

		professionals := protected.Group("/professionals")
		{
			professionals.GET("", cfg.Professionals.ListProfessionals)
			professionals.POST("", cfg.Professionals.CreateProfessional)
			professionals.GET("/:id", cfg.Professionals.GetProfessional)
			professionals.PUT("/:id", cfg.Professionals.ReplaceProfessional)
			professionals.PATCH("/:id", cfg.Professionals.UpdateProfessional)
			professionals.DELETE("/:id", cfg.Professionals.DeleteProfessional)
		}

		consultations := protected.Group("/consultations")
		{
			consultations.GET("", cfg.Consultations.ListConsultations)
			consultations.POST("", cfg.Consultations.CreateConsultation)
			consultations.GET("/professional/:professional_id", cfg.Consultations.ListByProfessional)
			consultations.GET("/:id", cfg.Consultations.GetConsultation)
			consultations.PUT("/:id", cfg.Consultations.ReplaceConsultation)
			consultations.PATCH("/:id", cfg.Consultations.UpdateConsultation)
			consultations.DELETE("/:id", cfg.Consultations.DeleteConsultation)
		}

		v1.GET("/ws/agenda", cfg.Auth.RequireAuthWebSocket(), cfg.Agenda.Subscribe)
	}

	return router
}
