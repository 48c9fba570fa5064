package main

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/nakai/internal/config"
	"github.com/Nixie-Tech-LLC/nakai/internal/storage"
)

// UploadsDir holds admin uploads when Spaces is off; served under /uploads.
const UploadsDir = "./uploads"

// InitStorage selects and returns the configured storage backend
func InitStorage(cfg *config.Config) storage.Storage {
	if cfg.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			cfg.SpacesEndpoint,
			cfg.SpacesRegion,
			cfg.SpacesBucket,
			cfg.SpacesCDNURL,
			cfg.SpacesAccessKey,
			cfg.SpacesSecretKey,
			cfg.SpacesDataPath,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Spaces storage")
		}
		log.Info().Str("cdn", cfg.SpacesCDNURL).Msg("using DigitalOcean Spaces storage")
		return spacesStorage
	}

	log.Info().Str("data_dir", cfg.DataDir).Msg("using local file storage")
	return storage.NewLocalStorage(cfg.DataDir, filepath.Clean(UploadsDir), "/uploads")
}
