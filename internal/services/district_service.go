package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"jelajah/internal/models/response_models"
	"jelajah/internal/repositories"
	"jelajah/pkg/utils"
)

type DistrictServiceInterface interface {
	ListDistricts(ctx context.Context) ([]response_models.District, error)
	GetDistrict(ctx context.Context, id string) (response_models.District, error)
}

type DistrictService struct {
	districtRepo repositories.DistrictRepository
	logger       *zap.Logger
}

func NewDistrictService(districtRepo repositories.DistrictRepository, logger *zap.Logger) DistrictServiceInterface {
	return &DistrictService{districtRepo: districtRepo, logger: logger}
}

func (s *DistrictService) ListDistricts(ctx context.Context) ([]response_models.District, error) {
	districts, err := s.districtRepo.List(ctx)
	if err != nil {
		s.logger.Error("Error listing districts", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.District, 0, len(districts))
	for _, d := range districts {
		out = append(out, toDistrictResponse(d))
	}
	return out, nil
}

func (s *DistrictService) GetDistrict(ctx context.Context, id string) (response_models.District, error) {
	if _, err := uuid.Parse(id); err != nil {
		return response_models.District{}, utils.ErrDistrictNotFound
	}

	district, err := s.districtRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Error fetching district", zap.String("district_id", id), zap.Error(err))
		return response_models.District{}, utils.ErrDatabaseError
	}
	if district == nil {
		return response_models.District{}, utils.ErrDistrictNotFound
	}
	return toDistrictResponse(*district), nil
}
