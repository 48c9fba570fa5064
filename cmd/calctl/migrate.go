package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/nakai/internal/db"
)

// MigrateCmd applies the SQL migrations in MIGRATIONS_PATH.
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := openDB(cmd.Context()); err != nil {
			return err
		}
		applied, err := db.RunMigrations(cmd.Context(), cfg.MigrationsPath)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "holiday schema up to date")
		}
		for _, name := range applied {
			fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
		}
		return nil
	},
}

var errNoDatabaseURL = errors.New("DATABASE_URL is not set")

func openDB(ctx context.Context) error {
	if cfg.DatabaseURL == "" {
		return errNoDatabaseURL
	}
	return db.Init(ctx, cfg.DatabaseURL)
}
