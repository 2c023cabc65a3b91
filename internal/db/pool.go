package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/exaring/otelpgx"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	TracingEnabled bool
}

func (p NewDBPoolParams) ConnString() string {
	return fmt.Sprintf(
		"postgres://postgres@%s:%s/%s",
		p.DBHost, p.DBPort, p.DBName,
	)
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return db, nil
}

// RunMigrations applies all pending migrations found in migrationsPath.
// connString is a regular postgres:// url, the pgx5 driver scheme is set here.
func RunMigrations(connString, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, migrateURL(connString))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warnf("close migrator: %v, %v", srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("get migrations version: %w", err)
	}
	log.Debugf("db schema at version %d (dirty: %t)", version, dirty)

	return nil
}

func migrateURL(connString string) string {
	if rest, ok := strings.CutPrefix(connString, "postgres://"); ok {
		return "pgx5://" + rest
	}
	return connString
}
