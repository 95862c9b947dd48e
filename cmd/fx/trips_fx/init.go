package trips_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"jelajah/internal/config"
	"jelajah/internal/repositories"
	"jelajah/internal/services"
	mem "jelajah/pkg/memcache"
)

var Module = fx.Provide(
	provideDraftStore, provideTripService)

// provideDraftStore is shared with the plan service, which consumes drafts
// when they are saved.
func provideDraftStore(cfg config.Config) mem.Store[services.TripDraftState] {
	return mem.NewCacheStore[services.TripDraftState](cfg.DraftTTL, 10*time.Minute)
}

func provideTripService(
	generator services.TripGenerator,
	districtRepo repositories.DistrictRepository,
	drafts mem.Store[services.TripDraftState],
	cfg config.Config,
	log *zap.Logger,
) services.TripServiceInterface {
	return services.NewTripService(generator, districtRepo, drafts, cfg, log)
}
