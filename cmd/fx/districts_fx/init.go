package districts_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"jelajah/internal/repositories"
	"jelajah/internal/services"
)

var Module = fx.Provide(
	provideDistrictRepo, provideDistrictService)

func provideDistrictRepo(db *gorm.DB) repositories.DistrictRepository {
	return repositories.NewDistrictRepository(db)
}

func provideDistrictService(districtRepo repositories.DistrictRepository, log *zap.Logger) services.DistrictServiceInterface {
	return services.NewDistrictService(districtRepo, log)
}
