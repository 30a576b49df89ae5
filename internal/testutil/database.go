// Package testutil contém helpers compartilhados pelos testes
package testutil

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafabene/agendasaude-backend/internal/infrastructure/persistence/postgres"
)

// NewInMemoryDatabase abre um SQLite em memória isolado, com foreign keys
// ativas e o mesmo schema do PostgreSQL
func NewInMemoryDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), postgres.NewGormConfig("warn"))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Uma única conexão: o banco em memória vive enquanto ela estiver aberta
	sqlDB.SetMaxOpenConns(1)

	if err := postgres.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}
