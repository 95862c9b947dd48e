package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"jelajah/internal/config"
	"jelajah/internal/infra"
	"jelajah/internal/models/request_models"
	"jelajah/internal/models/response_models"
	"jelajah/internal/planner"
	"jelajah/internal/repositories"
	mem "jelajah/pkg/memcache"
	"jelajah/pkg/utils"
)

// TripDraftState is a generated trip kept in memory until it is saved or
// expires.
type TripDraftState struct {
	ID              string
	DistrictID      string
	DistrictName    string
	TravelerCount   int
	TravelerType    string
	StartDate       time.Time
	EndDate         time.Time
	Budget          float64
	Interests       []string
	RemovedPlaceIDs []string
	Itinerary       planner.TripItinerary
}

func (s TripDraftState) tripRequest() planner.TripRequest {
	return planner.TripRequest{
		DistrictID:       s.DistrictID,
		Interests:        s.Interests,
		Budget:           s.Budget,
		TravelerCount:    s.TravelerCount,
		StartDate:        s.StartDate,
		DayCount:         utils.DayCount(s.StartDate, s.EndDate),
		ExcludedPlaceIDs: s.RemovedPlaceIDs,
	}
}

type TripGenerator interface {
	GenerateTrip(ctx context.Context, req planner.TripRequest) planner.TripItinerary
}

type TripServiceInterface interface {
	GenerateTrip(ctx context.Context, req request_models.GenerateTripRequest) (response_models.TripDraft, error)
	GetDraft(ctx context.Context, draftID string) (response_models.TripDraft, error)
	RemoveStop(ctx context.Context, draftID, placeID string) (response_models.TripDraft, error)
	RegenerateTrip(ctx context.Context, draftID string) (response_models.TripDraft, error)
}

type TripService struct {
	generator    TripGenerator
	districtRepo repositories.DistrictRepository
	drafts       mem.Store[TripDraftState]
	draftTTL     time.Duration
	maxTripDays  int
	logger       *zap.Logger
}

func NewTripService(
	generator TripGenerator,
	districtRepo repositories.DistrictRepository,
	drafts mem.Store[TripDraftState],
	cfg config.Config,
	logger *zap.Logger,
) TripServiceInterface {
	return &TripService{
		generator:    generator,
		districtRepo: districtRepo,
		drafts:       drafts,
		draftTTL:     cfg.DraftTTL,
		maxTripDays:  cfg.MaxTripDays,
		logger:       logger,
	}
}

func (s *TripService) GenerateTrip(ctx context.Context, req request_models.GenerateTripRequest) (response_models.TripDraft, error) {
	for _, interest := range req.Interests {
		if !planner.IsKnownInterest(interest) {
			return response_models.TripDraft{}, fmt.Errorf("%w: %q (expected one of %s)",
				utils.ErrInvalidInterest, interest, strings.Join(planner.Interests(), ", "))
		}
	}

	start, end, err := s.parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return response_models.TripDraft{}, err
	}

	if _, err := uuid.Parse(req.DistrictID); err != nil {
		return response_models.TripDraft{}, utils.ErrDistrictNotFound
	}
	district, err := s.districtRepo.GetByID(ctx, req.DistrictID)
	if err != nil {
		s.logger.Error("Error fetching district", zap.String("district_id", req.DistrictID), zap.Error(err))
		return response_models.TripDraft{}, utils.ErrDatabaseError
	}
	if district == nil {
		return response_models.TripDraft{}, utils.ErrDistrictNotFound
	}

	state := TripDraftState{
		ID:              uuid.NewString(),
		DistrictID:      req.DistrictID,
		DistrictName:    district.Name,
		TravelerCount:   req.TravelerCount,
		TravelerType:    req.TravelerType,
		StartDate:       start,
		EndDate:         end,
		Budget:          req.Budget,
		Interests:       slices.Clone(req.Interests),
		RemovedPlaceIDs: []string{},
	}
	state.Itinerary = s.generate(ctx, "generate", state.tripRequest())

	s.drafts.Set(state.ID, state, s.draftTTL)
	return toTripDraftResponse(state), nil
}

func (s *TripService) GetDraft(_ context.Context, draftID string) (response_models.TripDraft, error) {
	state, ok := s.drafts.Get(draftID)
	if !ok {
		return response_models.TripDraft{}, utils.ErrDraftNotFound
	}
	return toTripDraftResponse(state), nil
}

// RemoveStop drops a place from the draft and remembers it so a later
// regeneration avoids it.
func (s *TripService) RemoveStop(_ context.Context, draftID, placeID string) (response_models.TripDraft, error) {
	state, ok := s.drafts.Get(draftID)
	if !ok {
		return response_models.TripDraft{}, utils.ErrDraftNotFound
	}

	itinerary := cloneItinerary(state.Itinerary)
	if !itinerary.RemovePlace(placeID) {
		return response_models.TripDraft{}, utils.ErrPlaceNotInTrip
	}

	state.Itinerary = itinerary
	state.RemovedPlaceIDs = appendUnique(state.RemovedPlaceIDs, placeID)
	s.drafts.Set(draftID, state, s.draftTTL)
	return toTripDraftResponse(state), nil
}

// RegenerateTrip reruns generation with the original inputs, excluding every
// removed place.
func (s *TripService) RegenerateTrip(ctx context.Context, draftID string) (response_models.TripDraft, error) {
	state, ok := s.drafts.Get(draftID)
	if !ok {
		return response_models.TripDraft{}, utils.ErrDraftNotFound
	}
	if len(state.RemovedPlaceIDs) == 0 {
		return response_models.TripDraft{}, utils.ErrNoChanges
	}

	state.Itinerary = s.generate(ctx, "regenerate", state.tripRequest())
	s.drafts.Set(draftID, state, s.draftTTL)
	return toTripDraftResponse(state), nil
}

func (s *TripService) generate(ctx context.Context, kind string, req planner.TripRequest) planner.TripItinerary {
	started := time.Now()
	itinerary := s.generator.GenerateTrip(ctx, req)
	infra.TripGenerationSeconds.WithLabelValues(kind).Observe(time.Since(started).Seconds())

	outcome := "populated"
	if countPlaces(itinerary.Days) == 0 {
		outcome = "empty"
	}
	infra.TripsGenerated.WithLabelValues(kind, outcome).Inc()

	s.logger.Info("Trip itinerary generated",
		zap.String("kind", kind),
		zap.String("district_id", req.DistrictID),
		zap.Int("days", req.DayCount),
		zap.Int("excluded", len(req.ExcludedPlaceIDs)),
		zap.Int("places", countPlaces(itinerary.Days)),
		zap.Duration("took", time.Since(started)))
	return itinerary
}

func (s *TripService) parseDates(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := utils.ParseDateMY(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", utils.ErrInvalidDateRange, err)
	}
	end, err := utils.ParseDateMY(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", utils.ErrInvalidDateRange, err)
	}

	days := utils.DayCount(start, end)
	if days == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date is before start date", utils.ErrInvalidDateRange)
	}
	if days > s.maxTripDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: trips are limited to %d days", utils.ErrInvalidDateRange, s.maxTripDays)
	}
	return start, end, nil
}

func toTripDraftResponse(state TripDraftState) response_models.TripDraft {
	return response_models.TripDraft{
		DraftID:         state.ID,
		DistrictID:      state.DistrictID,
		DistrictName:    state.DistrictName,
		TravelerCount:   state.TravelerCount,
		TravelerType:    state.TravelerType,
		StartDate:       utils.FormatDateMY(state.StartDate),
		EndDate:         utils.FormatDateMY(state.EndDate),
		DayCount:        len(state.Itinerary.Days),
		Budget:          state.Budget,
		Interests:       state.Interests,
		RemovedPlaceIDs: state.RemovedPlaceIDs,
		Itinerary:       state.Itinerary,
	}
}

// cloneItinerary copies the day and slot slices so edits never reach a value
// still held by the draft store.
func cloneItinerary(t planner.TripItinerary) planner.TripItinerary {
	out := t
	out.Days = make([]planner.DayItinerary, len(t.Days))
	for i, day := range t.Days {
		day.Slots = slices.Clone(day.Slots)
		out.Days[i] = day
	}
	return out
}

func appendUnique(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(slices.Clone(ids), id)
}
