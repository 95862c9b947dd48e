package plans_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"jelajah/internal/repositories"
	"jelajah/internal/services"
	mem "jelajah/pkg/memcache"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService)

func providePlanRepo(db *gorm.DB) repositories.TravelPlanRepository {
	return repositories.NewTravelPlanRepository(db)
}

func providePlanService(
	planRepo repositories.TravelPlanRepository,
	accommodationRepo repositories.AccommodationRepository,
	drafts mem.Store[services.TripDraftState],
	log *zap.Logger,
) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, accommodationRepo, drafts, log)
}
