package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"jelajah/internal/infra"
	"jelajah/internal/models/db_models"
	"jelajah/internal/models/request_models"
	"jelajah/internal/models/response_models"
	"jelajah/internal/planner"
	"jelajah/internal/repositories"
	mem "jelajah/pkg/memcache"
	"jelajah/pkg/utils"
)

const (
	// MaxPlansPerList caps each of the upcoming, past and saved lists.
	MaxPlansPerList = 10
	// PlanAccommodationCount is how many stays a plan detail suggests.
	PlanAccommodationCount = 3
)

type PlanServiceInterface interface {
	SavePlan(ctx context.Context, userID string, req request_models.SavePlanRequest) (response_models.PlanDetail, error)
	ListPlans(ctx context.Context, userID string) (response_models.PlanCollections, error)
	GetPlan(ctx context.Context, userID, planID string) (response_models.PlanDetail, error)
	UpdatePlanStatus(ctx context.Context, userID, planID, status string) error
	DeletePlan(ctx context.Context, userID, planID string) error
	RemovePlanStop(ctx context.Context, userID, planID, placeID string) (response_models.PlanDetail, error)
}

type PlanService struct {
	planRepo          repositories.TravelPlanRepository
	accommodationRepo repositories.AccommodationRepository
	drafts            mem.Store[TripDraftState]
	logger            *zap.Logger
	now               func() time.Time
}

func NewPlanService(
	planRepo repositories.TravelPlanRepository,
	accommodationRepo repositories.AccommodationRepository,
	drafts mem.Store[TripDraftState],
	logger *zap.Logger,
) PlanServiceInterface {
	return &PlanService{
		planRepo:          planRepo,
		accommodationRepo: accommodationRepo,
		drafts:            drafts,
		logger:            logger,
		now:               utils.NowMY,
	}
}

// SavePlan persists a draft for the user. The draft is dropped from the store
// only once the plan row exists.
func (s *PlanService) SavePlan(ctx context.Context, userID string, req request_models.SavePlanRequest) (response_models.PlanDetail, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return response_models.PlanDetail{}, utils.ErrUnauthorized
	}

	draft, ok := s.drafts.Get(req.DraftID)
	if !ok {
		return response_models.PlanDetail{}, utils.ErrDraftNotFound
	}
	districtID, err := uuid.Parse(draft.DistrictID)
	if err != nil {
		return response_models.PlanDetail{}, utils.ErrDistrictNotFound
	}

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("%s Trip to %s", draft.TravelerType, draft.DistrictName)
	}

	plan := &db_models.TravelPlan{
		UserID:     owner,
		DistrictID: districtID,
		Title:      title,
		StartDate:  draft.StartDate,
		EndDate:    draft.EndDate,
		Status:     db_models.PlanStatusActive,
		TotalCost:  draft.Itinerary.TotalCost,
		Itinerary:  datatypes.NewJSONType(draft.Itinerary.Days),
		Preferences: datatypes.NewJSONType(db_models.PlanPreferences{
			TravelerCount:   draft.TravelerCount,
			TravelerType:    draft.TravelerType,
			Budget:          draft.Budget,
			Interests:       draft.Interests,
			RemovedPlaceIDs: draft.RemovedPlaceIDs,
		}),
	}

	if _, err := s.planRepo.Create(ctx, plan); err != nil {
		s.logger.Error("Error creating travel plan", zap.String("draft_id", req.DraftID), zap.Error(err))
		return response_models.PlanDetail{}, utils.ErrDatabaseError
	}
	s.drafts.Delete(req.DraftID)
	infra.PlansSaved.Inc()

	plan.District = &db_models.District{Name: draft.DistrictName}
	return toPlanDetail(*plan, s.accommodations(ctx, draft.DistrictID, draft.DistrictName)), nil
}

func (s *PlanService) ListPlans(ctx context.Context, userID string) (response_models.PlanCollections, error) {
	plans, err := s.planRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Error listing travel plans", zap.String("user_id", userID), zap.Error(err))
		return response_models.PlanCollections{}, utils.ErrDatabaseError
	}
	return CategorizePlans(plans, s.now()), nil
}

func (s *PlanService) GetPlan(ctx context.Context, userID, planID string) (response_models.PlanDetail, error) {
	plan, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return response_models.PlanDetail{}, err
	}

	districtName := ""
	if plan.District != nil {
		districtName = plan.District.Name
	}
	return toPlanDetail(*plan, s.accommodations(ctx, plan.DistrictID.String(), districtName)), nil
}

func (s *PlanService) UpdatePlanStatus(ctx context.Context, userID, planID, status string) error {
	switch status {
	case db_models.PlanStatusActive, db_models.PlanStatusSaved, db_models.PlanStatusCompleted:
	default:
		return utils.ErrInvalidPlanStatus
	}
	if _, err := uuid.Parse(planID); err != nil {
		return utils.ErrPlanNotFound
	}

	updated, err := s.planRepo.UpdateStatus(ctx, planID, userID, status)
	if err != nil {
		s.logger.Error("Error updating plan status", zap.String("plan_id", planID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !updated {
		return utils.ErrPlanNotFound
	}
	return nil
}

func (s *PlanService) DeletePlan(ctx context.Context, userID, planID string) error {
	if _, err := uuid.Parse(planID); err != nil {
		return utils.ErrPlanNotFound
	}

	deleted, err := s.planRepo.Delete(ctx, planID, userID)
	if err != nil {
		s.logger.Error("Error deleting travel plan", zap.String("plan_id", planID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrPlanNotFound
	}
	return nil
}

// RemovePlanStop drops a place from a saved plan under a row lock and
// recomputes the day and trip costs.
func (s *PlanService) RemovePlanStop(ctx context.Context, userID, planID, placeID string) (response_models.PlanDetail, error) {
	if _, err := uuid.Parse(planID); err != nil {
		return response_models.PlanDetail{}, utils.ErrPlanNotFound
	}

	err := s.planRepo.UpdateWithLock(ctx, planID, userID, func(plan *db_models.TravelPlan) error {
		trip := planner.TripItinerary{Days: plan.Itinerary.Data()}
		if !trip.RemovePlace(placeID) {
			return utils.ErrPlaceNotInTrip
		}

		prefs := plan.Preferences.Data()
		prefs.RemovedPlaceIDs = appendUnique(prefs.RemovedPlaceIDs, placeID)

		plan.Itinerary = datatypes.NewJSONType(trip.Days)
		plan.Preferences = datatypes.NewJSONType(prefs)
		plan.TotalCost = trip.TotalCost
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return response_models.PlanDetail{}, utils.ErrPlanNotFound
	case errors.Is(err, utils.ErrPlaceNotInTrip):
		return response_models.PlanDetail{}, err
	default:
		s.logger.Error("Error removing place from plan",
			zap.String("plan_id", planID), zap.String("place_id", placeID), zap.Error(err))
		return response_models.PlanDetail{}, utils.ErrDatabaseError
	}

	return s.GetPlan(ctx, userID, planID)
}

// ownedPlan loads a plan and hides plans that belong to someone else.
func (s *PlanService) ownedPlan(ctx context.Context, userID, planID string) (*db_models.TravelPlan, error) {
	if _, err := uuid.Parse(planID); err != nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		s.logger.Error("Error fetching travel plan", zap.String("plan_id", planID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || plan.UserID.String() != userID {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

// accommodations is best effort: a failed lookup leaves the list empty.
func (s *PlanService) accommodations(ctx context.Context, districtID, districtName string) []response_models.Accommodation {
	rows, err := s.accommodationRepo.TopByDistrict(ctx, districtID, PlanAccommodationCount)
	if err != nil {
		s.logger.Warn("Error fetching accommodations", zap.String("district_id", districtID), zap.Error(err))
		return []response_models.Accommodation{}
	}

	out := make([]response_models.Accommodation, 0, len(rows))
	for _, a := range rows {
		out = append(out, toAccommodationResponse(a, districtName))
	}
	return out
}

// CategorizePlans sorts plans into the three trip lists. A plan lands in
// upcoming when it is active and starts after now, in past when it is
// completed or already ended, and in saved when its status is saved. A plan
// can appear in both past and saved.
func CategorizePlans(plans []db_models.TravelPlan, now time.Time) response_models.PlanCollections {
	out := response_models.PlanCollections{
		Upcoming: []response_models.PlanSummary{},
		Past:     []response_models.PlanSummary{},
		Saved:    []response_models.PlanSummary{},
	}

	for _, p := range plans {
		summary := toPlanSummary(p)
		if p.Status == db_models.PlanStatusActive && p.StartDate.After(now) && len(out.Upcoming) < MaxPlansPerList {
			out.Upcoming = append(out.Upcoming, summary)
		}
		if (p.Status == db_models.PlanStatusCompleted || p.EndDate.Before(now)) && len(out.Past) < MaxPlansPerList {
			out.Past = append(out.Past, summary)
		}
		if p.Status == db_models.PlanStatusSaved && len(out.Saved) < MaxPlansPerList {
			out.Saved = append(out.Saved, summary)
		}
	}
	return out
}
