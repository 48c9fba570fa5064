package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var (
	DB *sqlx.DB
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

// Init connects to the holiday database and assigns it to DB. Postgres is
// often still starting next to us, so failed attempts are retried until
// connectAttempts is reached or ctx is done.
func Init(ctx context.Context, databaseURL string) error {
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		DB, err = sqlx.ConnectContext(ctx, "postgres", databaseURL)
		if err == nil {
			log.Info().Int("attempt", attempt).Msg("connected to holiday database")
			return nil
		}

		log.Error().Err(err).
			Int("attempt", attempt).
			Msgf("holiday database unavailable, retrying in %s", connectBackoff)

		select {
		case <-ctx.Done():
			return fmt.Errorf("connect to holiday database: %w", ctx.Err())
		case <-time.After(connectBackoff):
		}
	}

	return fmt.Errorf("could not reach holiday database after %d attempts: %w", connectAttempts, err)
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// RunMigrations applies every "*.up.sql" file in migrationsPath that is not
// yet recorded in schema_migrations, in name order, and returns the names it
// applied. Each file runs in its own transaction with its bookkeeping row.
func RunMigrations(ctx context.Context, migrationsPath string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(migrationsPath, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	if _, err := DB.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var done []string
	if err := DB.SelectContext(ctx, &done, `SELECT name FROM schema_migrations;`); err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	seen := make(map[string]bool, len(done))
	for _, name := range done {
		seen[name] = true
	}

	var applied []string
	for _, file := range files {
		name := filepath.Base(file)
		if seen[name] {
			continue
		}
		if err := applyMigration(ctx, file, name); err != nil {
			return applied, err
		}
		applied = append(applied, name)
		log.Info().Str("migration", name).Msg("holiday schema migration applied")
	}

	if len(applied) == 0 {
		log.Debug().Int("known", len(seen)).Msg("holiday schema up to date")
	}
	return applied, nil
}

func applyMigration(ctx context.Context, file, name string) error {
	sqlBytes, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read migration %q: %w", name, err)
	}

	tx, err := DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %q: %w", name, err)
	}
	defer tx.Rollback()

	if stmt := strings.TrimSpace(string(sqlBytes)); stmt != "" {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute migration %q: %w", name, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES ($1);`, name); err != nil {
		return fmt.Errorf("record migration %q: %w", name, err)
	}
	return tx.Commit()
}
