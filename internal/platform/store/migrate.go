package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies every pending up migration from the embedded schema
// url is the regular postgres:// DSN
func Migrate(url string, log logger.Logger) error {
	src, err := iofs.New(migrations.FS, migrations.Dir)
	if err != nil {
		return fmt.Errorf("migrate: source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(url))
	if err != nil {
		return fmt.Errorf("migrate: init: %w", err)
	}
	m.Log = migrateLog{l: log}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("db", dbErr).Msg("migrate close")
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: up: %w", err)
	}
	v, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migrate: version: %w", err)
	}
	log.Info().Uint("version", v).Bool("dirty", dirty).Msg("schema migrated")
	return nil
}

// migrateURL swaps the postgres scheme for the pgx v5 driver scheme
func migrateURL(url string) string {
	for _, p := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(url, p); ok {
			return "pgx5://" + rest
		}
	}
	return url
}

// migrateLog adapts zerolog to migrate.Logger
type migrateLog struct{ l logger.Logger }

func (m migrateLog) Printf(format string, v ...any) {
	m.l.Debug().Msgf(strings.TrimSpace(format), v...)
}

func (m migrateLog) Verbose() bool { return m.l.GetLevel() <= -1 }
