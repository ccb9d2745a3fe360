// Package sqlitetest abre bancos SQLite em memória com o schema da aplicação,
// para testes que não precisam de um PostgreSQL real.
package sqlitetest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/persistence/postgres"
)

var counter atomic.Int64

// Open cria um banco isolado por chamada, já migrado, e o fecha no fim do teste
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := New()
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	t.Cleanup(func() {
		_ = postgres.Close(db)
	})

	return db
}

// New cria um banco isolado sem depender de testing.TB (útil em suites BDD)
func New() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:memdb%d?mode=memory&cache=shared&_foreign_keys=on", counter.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), postgres.GormConfig("silent"))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := postgres.AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}
