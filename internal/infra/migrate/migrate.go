package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

const migrationsDir = "sql"

// goose keeps its dialect and base FS in package globals
var gooseMu sync.Mutex

type Migrator struct {
	db *sql.DB
}

func NewMigrator(pool *pgxpool.Pool) *Migrator {
	// goose works on *sql.DB, so wrap the pool instead of opening a second one
	return &Migrator{db: stdlib.OpenDBFromPool(pool)}
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := configure(); err != nil {
		return err
	}

	slog.Info("Applying database migrations")
	if err := goose.UpContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("get migration version: %w", err)
	}
	slog.Info("Migrations applied", "version", version)
	return nil
}

// Reset rolls every migration back. Used by tests to start from an empty schema.
func (m *Migrator) Reset(ctx context.Context) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := configure(); err != nil {
		return err
	}
	if err := goose.ResetContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("reset migrations: %w", err)
	}
	return nil
}

// Close releases the sql.DB wrapper. The pool itself is owned elsewhere.
func (m *Migrator) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func configure() error {
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}
