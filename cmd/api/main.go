package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/rafabene/agendasaude-backend/docs"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	httphandlers "github.com/rafabene/agendasaude-backend/internal/handlers/http"
	"github.com/rafabene/agendasaude-backend/internal/handlers/middleware"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/cache"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/config"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/i18n"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/logging"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/realtime"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/security"
	"github.com/rafabene/agendasaude-backend/internal/services"
)

//	@title						Agenda Saúde API
//	@version					1.0
//	@description				API de agendamento de consultas com profissionais de saúde.
//	@host						localhost:8080
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Digite "Bearer" seguido de um espaço e o token de acesso.
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting agendasaude backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Warn("failed to load locales from disk, using embedded", "dir", cfg.I18n.LocalesDir, "error", err)
		i18nService, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
		if err != nil {
			logger.Error("failed to initialize i18n", "error", err)
			log.Fatal(err)
		}
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Revogação de tokens: Redis quando configurado, memória caso contrário
	var denylist ports.TokenDenylist = cache.NewMemoryTokenDenylist()
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = cache.NewRedisClient(context.Background(), cfg.Redis, logger)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			log.Fatal(err)
		}
		defer func() { _ = redisClient.Close() }()
		denylist = cache.NewRedisTokenDenylist(redisClient)
	} else {
		logger.Warn("REDIS_URL not set, revoked tokens are kept in memory")
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	professionalRepo := postgres.NewProfessionalRepository(db)
	consultationRepo := postgres.NewConsultationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	tokens := security.NewJWTService(cfg.JWT)
	authService := services.NewAuthService(userRepo, tokens, security.NewBcryptHasher(bcrypt.DefaultCost), denylist, logger)
	professionalService := services.NewProfessionalService(professionalRepo, consultationRepo, uow, logger)
	consultationService := services.NewConsultationService(consultationRepo, professionalRepo, uow, logger)

	if cfg.Admin.Username != "" {
		created, err := authService.EnsureUser(context.Background(), cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			logger.Error("failed to bootstrap admin user", "error", err)
			log.Fatal(err)
		}
		if created {
			logger.Info("admin user created", "username", cfg.Admin.Username)
		}
	}

	// Feed em tempo real da agenda
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := realtime.NewHub(logger, middleware.WebSocketOriginChecker(cfg.CORS.AllowedOrigins))
	go hub.Run(hubCtx)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		I18n:           i18nService,
		Logger:         logger,
		Auth:           middleware.NewAuthMiddleware(authService, logger, httphandlers.Unauthorized),
		Health:         httphandlers.NewHealthHandler(db),
		AuthHandler:    httphandlers.NewAuthHandler(authService, logger),
		Professionals:  httphandlers.NewProfessionalHandler(professionalService, hub, logger),
		Consultations:  httphandlers.NewConsultationHandler(consultationService, hub, logger),
		Agenda:         httphandlers.NewAgendaHandler(hub, logger),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
