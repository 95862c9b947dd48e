package places_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"jelajah/internal/config"
	"jelajah/internal/planner"
	"jelajah/internal/repositories"
	"jelajah/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo,
	provideAccommodationRepo,
	provideCatalog,
	provideGenerator,
	providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideAccommodationRepo(db *gorm.DB) repositories.AccommodationRepository {
	return repositories.NewAccommodationRepository(db)
}

// provideCatalog puts the read-through cache in front of the place table for
// trip generation.
func provideCatalog(placeRepo repositories.PlaceRepository, cfg config.Config) planner.PlaceCatalog {
	return planner.NewCachedCatalog(placeRepo, cfg.CatalogCacheTTL)
}

func provideGenerator(catalog planner.PlaceCatalog, log *zap.Logger) services.TripGenerator {
	return planner.NewGenerator(catalog, log)
}

func providePlaceService(
	placeRepo repositories.PlaceRepository,
	districtRepo repositories.DistrictRepository,
	accommodationRepo repositories.AccommodationRepository,
	log *zap.Logger,
) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, districtRepo, accommodationRepo, log)
}
