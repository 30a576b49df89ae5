package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/config"
)

// NewDatabaseConnection cria uma nova conexão com o PostgreSQL
func NewDatabaseConnection(cfg *config.DatabaseConfig, logLevel string, log ports.Logger) (*gorm.DB, error) {
	// Conectar
	db, err := gorm.Open(postgres.Open(cfg.DSN()), NewGormConfig(logLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configurar connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MinConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxIdleTime) * time.Second)

	// Ping para verificar conexão
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
	)

	return db, nil
}

// NewGormConfig monta a configuração do GORM compartilhada por todos os dialetos.
// TranslateError converte violações de unique/foreign key em gorm.ErrDuplicatedKey
// e gorm.ErrForeignKeyViolated.
func NewGormConfig(logLevel string) *gorm.Config {
	mode := logger.Warn
	if logLevel == "debug" {
		mode = logger.Info
	}

	return &gorm.Config{
		Logger: logger.Default.LogMode(mode),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt:    false,
		TranslateError: true,
	}
}

// Migrate cria/atualiza as tabelas, o índice único de horário e as foreign keys
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close fecha o pool de conexões subjacente
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
