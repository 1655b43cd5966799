package postgres

import (
	"database/sql"

	"pixelforge/config"
	"pixelforge/migrations"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pkg/errors"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RunMigrations applies every pending embedded migration to the database at dsn.
// It uses its own connection because the migrate driver closes it on shutdown.
func RunMigrations(dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open migration connection")
	}

	driver, err := pgxv5.WithInstance(sqlDB, &pgxv5.Config{})
	if err != nil {
		_ = sqlDB.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrator")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// migrationDSN prefers the explicit migration URL and falls back to the DSN GORM was opened with.
func migrationDSN(cfg *config.Config, db *gorm.DB) (string, error) {
	if cfg.Migration != nil && cfg.Migration.DatabaseURL != "" {
		return cfg.Migration.DatabaseURL, nil
	}

	if dialector, ok := db.Dialector.(*gormpg.Dialector); ok && dialector.Config != nil && dialector.Config.DSN != "" {
		return dialector.Config.DSN, nil
	}

	return "", errors.New("migration.databaseUrl must be set when the connection DSN is not available")
}
