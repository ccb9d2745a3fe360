package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations aplica as migrações SQL embutidas no banco apontado por databaseURL
// (formato postgres://). Usa uma conexão própria, independente do pool do GORM.
func RunMigrations(databaseURL string) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// PrepareSchema aplica as migrações SQL em produção e o AutoMigrate dos
// models nos demais ambientes
func PrepareSchema(db *gorm.DB, cfg *config.Config) error {
	if cfg.IsProduction() {
		return RunMigrations(cfg.Database.URL())
	}
	return AutoMigrate(db)
}
