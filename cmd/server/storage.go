package main

import (
	"github.com/rs/zerolog/log"

	"github.com/masjid-labs/muadhin/internal/storage"
)

// InitStorage selects and returns the configured asset storage backend.
func InitStorage(env Environment) storage.Storage {
	if env.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesCDNURL,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
			storage.DefaultMaxAssetBytes,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Spaces storage")
		}
		log.Info().Str("cdn", env.SpacesCDNURL).Msg("using Spaces asset storage")
		return spacesStorage
	}

	local := storage.NewLocalStorage(env.UploadDir, storage.DefaultMaxAssetBytes)
	log.Info().Str("dir", env.UploadDir).Msg("using local asset storage")
	return local
}
