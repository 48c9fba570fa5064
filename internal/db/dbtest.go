package db

import (
	"context"
	"errors"
	"fmt"
	"os"
)

var ErrNoTestDatabase = errors.New("TEST_DATABASE_URL is not set")

// NewTestStore connects to TEST_DATABASE_URL, brings the holiday schema up to
// date and returns a Store over an empty holidays table.
func NewTestStore(ctx context.Context, migrationsPath string) (Store, error) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		return nil, ErrNoTestDatabase
	}

	if err := Init(ctx, dbURL); err != nil {
		return nil, err
	}
	if _, err := RunMigrations(ctx, migrationsPath); err != nil {
		return nil, err
	}

	if _, err := DB.ExecContext(ctx, `TRUNCATE holidays RESTART IDENTITY;`); err != nil {
		return nil, fmt.Errorf("reset holidays: %w", err)
	}
	return NewStore(DB), nil
}
