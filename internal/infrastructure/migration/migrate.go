package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"vaultkeeper/internal/config"
)

// Migrator is the subset of migrate.Migrate used here.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine builds a Migrator; tests swap it to avoid touching a database.
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    config.Storage
	engine MigrationEngine
}

func NewMigration(cfg config.Storage, engine MigrationEngine) *Migration {
	return &Migration{
		cfg:    cfg,
		engine: engine,
	}
}

// DefaultEngine runs migrations for real.
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up applies every pending migration from cfg.Migrations. Being up to date is
// not an error.
func (mg *Migration) Up() (err error) {
	m, err := mg.engine("file://"+mg.cfg.Migrations, mg.cfg.DatabaseURI)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
