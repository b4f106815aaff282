package migration

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

// Run applies every pending SQL migration under internal/migration and
// reports how many were applied. The caller decides whether a failure is
// fatal.
func Run(db *sql.DB, logger *zap.Logger) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal/migration"),
	}

	applied, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	logger.Info("Database migrations applied", zap.Int("count", applied))
	return nil
}
