package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/config"
	"github.com/Nixie-Tech-LLC/nakai/internal/db"
	"github.com/Nixie-Tech-LLC/nakai/internal/storage"
)

// RootCmd implements the calctl command.
var RootCmd = &cobra.Command{
	Use:          "calctl",
	Short:        "inspect and maintain nakai calendar data",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		var err error
		cfg, err = config.Load()
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var cfg *config.Config

func init() {
	RootCmd.AddCommand(MonthCmd)
	RootCmd.AddCommand(DayCmd)
	RootCmd.AddCommand(HolidaysCmd)
	RootCmd.AddCommand(MigrateCmd)
}

// loadCatalog reads calendar data from the configured storage backend, with
// holidays from postgres when HOLIDAY_SOURCE=db.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	st, holidays, err := catalogSources(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewLoader(st, holidays).Load(ctx)
}

func catalogSources(ctx context.Context) (storage.Storage, catalog.HolidaySource, error) {
	var st storage.Storage = storage.NewLocalStorage(cfg.DataDir, "", "")
	if cfg.UseSpaces {
		spaces, err := storage.NewSpacesStorage(
			cfg.SpacesEndpoint,
			cfg.SpacesRegion,
			cfg.SpacesBucket,
			cfg.SpacesCDNURL,
			cfg.SpacesAccessKey,
			cfg.SpacesSecretKey,
			cfg.SpacesDataPath,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("spaces storage: %w", err)
		}
		st = spaces
	}

	if cfg.HolidaySource != config.HolidaySourceDB {
		return st, nil, nil
	}
	if err := openDB(ctx); err != nil {
		return nil, nil, err
	}
	return st, db.NewStore(db.DB), nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
