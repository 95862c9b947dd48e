package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"jelajah/internal/models/db_models"
	"jelajah/internal/models/response_models"
	"jelajah/internal/planner"
	"jelajah/internal/repositories"
	"jelajah/pkg/utils"
)

const (
	trendyLimit         = 9
	trendyMinRating     = 4.0
	hiddenGemLimit      = 7
	hiddenGemMinRating  = 3.5
	hiddenGemPopularity = 70
)

type PlaceServiceInterface interface {
	GetPlaceByID(ctx context.Context, id string) (response_models.Place, error)
	ListPlacesByDistrict(ctx context.Context, districtID string, page, pageSize int) ([]response_models.Place, error)
	Discover(ctx context.Context) (response_models.DiscoverPage, error)
}

type PlaceService struct {
	placeRepo         repositories.PlaceRepository
	districtRepo      repositories.DistrictRepository
	accommodationRepo repositories.AccommodationRepository
	logger            *zap.Logger
}

func NewPlaceService(
	placeRepo repositories.PlaceRepository,
	districtRepo repositories.DistrictRepository,
	accommodationRepo repositories.AccommodationRepository,
	logger *zap.Logger,
) PlaceServiceInterface {
	return &PlaceService{
		placeRepo:         placeRepo,
		districtRepo:      districtRepo,
		accommodationRepo: accommodationRepo,
		logger:            logger,
	}
}

func (s *PlaceService) GetPlaceByID(ctx context.Context, id string) (response_models.Place, error) {
	if _, err := uuid.Parse(id); err != nil {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}

	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Error fetching place", zap.String("place_id", id), zap.Error(err))
		return response_models.Place{}, utils.ErrDatabaseError
	}
	if place == nil {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}
	return toPlaceResponse(*place), nil
}

func (s *PlaceService) ListPlacesByDistrict(ctx context.Context, districtID string, page, pageSize int) ([]response_models.Place, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	if _, err := uuid.Parse(districtID); err != nil {
		return nil, utils.ErrDistrictNotFound
	}

	district, err := s.districtRepo.GetByID(ctx, districtID)
	if err != nil {
		s.logger.Error("Error fetching district", zap.String("district_id", districtID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if district == nil {
		return nil, utils.ErrDistrictNotFound
	}

	places, err := s.placeRepo.ListByDistrict(ctx, districtID, page, pageSize)
	if err != nil {
		s.logger.Error("Error listing places", zap.String("district_id", districtID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := toPlaceResponses(places)
	for i := range out {
		out[i].DistrictName = district.Name
	}
	return out, nil
}

// Discover builds the landing page listings. The three lookups run
// concurrently and any failure fails the page.
func (s *PlaceService) Discover(ctx context.Context) (response_models.DiscoverPage, error) {
	var (
		trendy, gems []db_models.Place
		stays        []db_models.Accommodation
		districts    []db_models.District
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trendy, err = s.placeRepo.ListHighlights(gctx, repositories.HighlightFilter{
			Category:  planner.CategoryAttraction,
			MinRating: trendyMinRating,
			Limit:     trendyLimit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		gems, err = s.placeRepo.ListHighlights(gctx, repositories.HighlightFilter{
			Category:      planner.CategoryAttraction,
			MinRating:     hiddenGemMinRating,
			MaxPopularity: hiddenGemPopularity,
			Limit:         hiddenGemLimit,
		})
		return err
	})
	g.Go(func() error {
		var err error
		stays, err = s.accommodationRepo.BestPerDistrict(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		districts, err = s.districtRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Error building discover page", zap.Error(err))
		return response_models.DiscoverPage{}, utils.ErrDatabaseError
	}

	names := make(map[string]string, len(districts))
	for _, d := range districts {
		names[d.ID.String()] = d.Name
	}

	page := response_models.DiscoverPage{
		Trendy:         toPlaceResponses(trendy),
		HiddenGems:     toPlaceResponses(gems),
		Accommodations: make([]response_models.Accommodation, 0, len(stays)),
	}
	for _, a := range stays {
		page.Accommodations = append(page.Accommodations, toAccommodationResponse(a, names[a.DistrictID.String()]))
	}
	return page, nil
}
