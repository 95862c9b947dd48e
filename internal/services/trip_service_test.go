package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"jelajah/internal/config"
	"jelajah/internal/models/db_models"
	"jelajah/internal/models/request_models"
	"jelajah/internal/planner"
	mem "jelajah/pkg/memcache"
	"jelajah/pkg/utils"
)

type tripFixture struct {
	service   TripServiceInterface
	generator *MockGenerator
	districts *MockDistrictRepo
	drafts    *mem.CacheStore[TripDraftState]
}

func newTripFixture() tripFixture {
	f := tripFixture{
		generator: new(MockGenerator),
		districts: new(MockDistrictRepo),
		drafts:    mem.NewCacheStore[TripDraftState](time.Hour, time.Hour),
	}
	cfg := config.Config{DraftTTL: time.Hour, MaxTripDays: 14}
	f.service = NewTripService(f.generator, f.districts, f.drafts, cfg, testLogger())
	return f
}

func validTripRequest(districtID string) request_models.GenerateTripRequest {
	return request_models.GenerateTripRequest{
		DistrictID:    districtID,
		TravelerCount: 2,
		TravelerType:  "Couple",
		StartDate:     "2025-03-10",
		EndDate:       "2025-03-11",
		Budget:        300,
		Interests:     []string{"Nature", "Food"},
	}
}

func TestGenerateTrip_StoresDraft(t *testing.T) {
	f := newTripFixture()
	districtID := uuid.NewString()
	ctx := context.Background()

	f.districts.On("GetByID", mock.Anything, districtID).
		Return(&db_models.District{Name: "Langkawi"}, nil)
	f.generator.On("GenerateTrip", mock.Anything, mock.MatchedBy(func(req planner.TripRequest) bool {
		return req.DistrictID == districtID &&
			req.DayCount == 2 &&
			req.TravelerCount == 2 &&
			req.Budget == 300 &&
			len(req.ExcludedPlaceIDs) == 0 &&
			req.StartDate.Equal(mustDate("2025-03-10"))
	})).Return(sampleItinerary())

	draft, err := f.service.GenerateTrip(ctx, validTripRequest(districtID))
	require.NoError(t, err)

	assert.NotEmpty(t, draft.DraftID)
	assert.Equal(t, "Langkawi", draft.DistrictName)
	assert.Equal(t, "2025-03-10", draft.StartDate)
	assert.Equal(t, "2025-03-11", draft.EndDate)
	assert.Equal(t, 2, draft.DayCount)
	assert.Equal(t, 25.0, draft.Itinerary.TotalCost)
	assert.Empty(t, draft.RemovedPlaceIDs)

	stored, err := f.service.GetDraft(ctx, draft.DraftID)
	require.NoError(t, err)
	assert.Equal(t, draft, stored)
	f.generator.AssertExpectations(t)
}

func TestGenerateTrip_Validation(t *testing.T) {
	districtID := uuid.NewString()

	tests := []struct {
		name    string
		mutate  func(*request_models.GenerateTripRequest)
		wantErr error
	}{
		{
			name:    "unknown interest",
			mutate:  func(r *request_models.GenerateTripRequest) { r.Interests = []string{"Nature", "Skydiving"} },
			wantErr: utils.ErrInvalidInterest,
		},
		{
			name:    "malformed start date",
			mutate:  func(r *request_models.GenerateTripRequest) { r.StartDate = "10/03/2025" },
			wantErr: utils.ErrInvalidDateRange,
		},
		{
			name:    "end before start",
			mutate:  func(r *request_models.GenerateTripRequest) { r.EndDate = "2025-03-09" },
			wantErr: utils.ErrInvalidDateRange,
		},
		{
			name:    "trip too long",
			mutate:  func(r *request_models.GenerateTripRequest) { r.EndDate = "2025-03-30" },
			wantErr: utils.ErrInvalidDateRange,
		},
		{
			name:    "malformed district id",
			mutate:  func(r *request_models.GenerateTripRequest) { r.DistrictID = "kota-setar" },
			wantErr: utils.ErrDistrictNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTripFixture()
			req := validTripRequest(districtID)
			tt.mutate(&req)

			_, err := f.service.GenerateTrip(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			f.generator.AssertNotCalled(t, "GenerateTrip", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateTrip_UnknownInterestListsChoices(t *testing.T) {
	f := newTripFixture()
	req := validTripRequest(uuid.NewString())
	req.Interests = []string{"Skydiving"}

	_, err := f.service.GenerateTrip(context.Background(), req)
	require.ErrorIs(t, err, utils.ErrInvalidInterest)
	assert.Contains(t, err.Error(), `"Skydiving"`)
	for _, name := range planner.Interests() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestGenerateTrip_DistrictLookup(t *testing.T) {
	districtID := uuid.NewString()

	t.Run("missing district", func(t *testing.T) {
		f := newTripFixture()
		f.districts.On("GetByID", mock.Anything, districtID).Return(nil, nil)

		_, err := f.service.GenerateTrip(context.Background(), validTripRequest(districtID))
		assert.ErrorIs(t, err, utils.ErrDistrictNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		f := newTripFixture()
		f.districts.On("GetByID", mock.Anything, districtID).Return(nil, errors.New("connection reset"))

		_, err := f.service.GenerateTrip(context.Background(), validTripRequest(districtID))
		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}

func seedDraft(f tripFixture, removed ...string) TripDraftState {
	state := TripDraftState{
		ID:              uuid.NewString(),
		DistrictID:      uuid.NewString(),
		DistrictName:    "Langkawi",
		TravelerCount:   2,
		TravelerType:    "Couple",
		StartDate:       mustDate("2025-03-10"),
		EndDate:         mustDate("2025-03-11"),
		Budget:          300,
		Interests:       []string{"Nature"},
		RemovedPlaceIDs: removed,
		Itinerary:       sampleItinerary(),
	}
	f.drafts.Set(state.ID, state, time.Hour)
	return state
}

func TestRemoveStop(t *testing.T) {
	f := newTripFixture()
	ctx := context.Background()
	state := seedDraft(f)

	draft, err := f.service.RemoveStop(ctx, state.ID, "nasi-kandar")
	require.NoError(t, err)
	assert.Equal(t, []string{"nasi-kandar"}, draft.RemovedPlaceIDs)
	assert.Equal(t, 10.0, draft.Itinerary.TotalCost)
	assert.Len(t, draft.Itinerary.Days[0].Slots, 1)

	// Removing again is reported as not part of the trip.
	_, err = f.service.RemoveStop(ctx, state.ID, "nasi-kandar")
	assert.ErrorIs(t, err, utils.ErrPlaceNotInTrip)

	_, err = f.service.RemoveStop(ctx, uuid.NewString(), "museum")
	assert.ErrorIs(t, err, utils.ErrDraftNotFound)
}

func TestRemoveStop_DoesNotAliasStoredDraft(t *testing.T) {
	f := newTripFixture()
	ctx := context.Background()
	state := seedDraft(f)
	before, err := f.service.GetDraft(ctx, state.ID)
	require.NoError(t, err)

	_, err = f.service.RemoveStop(ctx, state.ID, "museum")
	require.NoError(t, err)

	assert.Len(t, before.Itinerary.Days[0].Slots, 2)
	assert.Equal(t, 25.0, before.Itinerary.TotalCost)
}

func TestRegenerateTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("no removals", func(t *testing.T) {
		f := newTripFixture()
		state := seedDraft(f)

		_, err := f.service.RegenerateTrip(ctx, state.ID)
		assert.ErrorIs(t, err, utils.ErrNoChanges)
		f.generator.AssertNotCalled(t, "GenerateTrip", mock.Anything, mock.Anything)
	})

	t.Run("excludes removed places", func(t *testing.T) {
		f := newTripFixture()
		state := seedDraft(f, "museum", "beach")
		replacement := planner.TripItinerary{
			Days: []planner.DayItinerary{{Day: 1, Slots: []planner.TimeSlot{slot("waterfall", 5, planner.SlotAttraction)}}},
		}
		replacement.Recalculate()

		f.generator.On("GenerateTrip", mock.Anything, mock.MatchedBy(func(req planner.TripRequest) bool {
			return assert.ObjectsAreEqual([]string{"museum", "beach"}, req.ExcludedPlaceIDs) &&
				req.DistrictID == state.DistrictID &&
				req.DayCount == 2
		})).Return(replacement).Once()

		draft, err := f.service.RegenerateTrip(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, state.ID, draft.DraftID)
		assert.Equal(t, 5.0, draft.Itinerary.TotalCost)
		assert.Equal(t, []string{"museum", "beach"}, draft.RemovedPlaceIDs)
		f.generator.AssertExpectations(t)
	})

	t.Run("expired draft", func(t *testing.T) {
		f := newTripFixture()
		_, err := f.service.RegenerateTrip(ctx, uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrDraftNotFound)
	})
}

func TestGetDraft_ExpiresAfterTTL(t *testing.T) {
	f := newTripFixture()
	state := TripDraftState{ID: uuid.NewString(), Itinerary: sampleItinerary()}
	f.drafts.Set(state.ID, state, 50*time.Millisecond)

	_, err := f.service.GetDraft(context.Background(), state.ID)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	_, err = f.service.GetDraft(context.Background(), state.ID)
	assert.ErrorIs(t, err, utils.ErrDraftNotFound)
}
