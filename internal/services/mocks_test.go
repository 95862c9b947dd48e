package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"jelajah/internal/models/db_models"
	"jelajah/internal/planner"
	"jelajah/internal/repositories"
	"jelajah/pkg/utils"
)

type MockDistrictRepo struct {
	mock.Mock
}

func (m *MockDistrictRepo) List(ctx context.Context) ([]db_models.District, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.District), args.Error(1)
}

func (m *MockDistrictRepo) GetByID(ctx context.Context, id string) (*db_models.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.District), args.Error(1)
}

type MockPlaceRepo struct {
	mock.Mock
}

func (m *MockPlaceRepo) QueryPlaces(ctx context.Context, q planner.PlaceQuery) ([]planner.Place, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]planner.Place), args.Error(1)
}

func (m *MockPlaceRepo) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Place), args.Error(1)
}

func (m *MockPlaceRepo) ListByDistrict(ctx context.Context, districtID string, page, pageSize int) ([]db_models.Place, error) {
	args := m.Called(ctx, districtID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Place), args.Error(1)
}

func (m *MockPlaceRepo) ListHighlights(ctx context.Context, filter repositories.HighlightFilter) ([]db_models.Place, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Place), args.Error(1)
}

type MockAccommodationRepo struct {
	mock.Mock
}

func (m *MockAccommodationRepo) TopByDistrict(ctx context.Context, districtID string, limit int) ([]db_models.Accommodation, error) {
	args := m.Called(ctx, districtID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepo) BestPerDistrict(ctx context.Context) ([]db_models.Accommodation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Accommodation), args.Error(1)
}

// MockPlanRepo runs UpdateWithLock's mutate against the plan configured as
// the first return value, mimicking the locked read-modify-write.
type MockPlanRepo struct {
	mock.Mock
}

func (m *MockPlanRepo) Create(ctx context.Context, plan *db_models.TravelPlan) (uuid.UUID, error) {
	args := m.Called(ctx, plan)
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	return plan.ID, args.Error(0)
}

func (m *MockPlanRepo) GetByID(ctx context.Context, id string) (*db_models.TravelPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.TravelPlan), args.Error(1)
}

func (m *MockPlanRepo) ListByUser(ctx context.Context, userID string) ([]db_models.TravelPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.TravelPlan), args.Error(1)
}

func (m *MockPlanRepo) UpdateStatus(ctx context.Context, id, userID, status string) (bool, error) {
	args := m.Called(ctx, id, userID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlanRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlanRepo) UpdateWithLock(ctx context.Context, id, userID string, mutate func(*db_models.TravelPlan) error) error {
	args := m.Called(ctx, id, userID)
	if err := args.Error(1); err != nil {
		return err
	}
	return mutate(args.Get(0).(*db_models.TravelPlan))
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateTrip(ctx context.Context, req planner.TripRequest) planner.TripItinerary {
	args := m.Called(ctx, req)
	return args.Get(0).(planner.TripItinerary)
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func mustDate(s string) time.Time {
	t, err := utils.ParseDateMY(s)
	if err != nil {
		panic(err)
	}
	return t
}

func slot(id string, price float64, kind planner.SlotType) planner.TimeSlot {
	return planner.TimeSlot{
		Place: planner.Place{ID: id, Name: id, AvgPrice: price},
		Type:  kind,
	}
}

// sampleItinerary has two days: museum and lunch on day one, the beach on day
// two.
func sampleItinerary() planner.TripItinerary {
	trip := planner.TripItinerary{
		Days: []planner.DayItinerary{
			{Day: 1, Date: mustDate("2025-03-10"), Slots: []planner.TimeSlot{
				slot("museum", 10, planner.SlotAttraction),
				slot("nasi-kandar", 15, planner.SlotDining),
			}},
			{Day: 2, Date: mustDate("2025-03-11"), Slots: []planner.TimeSlot{
				slot("beach", 0, planner.SlotAttraction),
			}},
		},
		TotalPlaces: 3,
	}
	trip.Recalculate()
	return trip
}

func samplePlan(userID uuid.UUID, status string, start, end string) db_models.TravelPlan {
	trip := sampleItinerary()
	return db_models.TravelPlan{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		UserID:     userID,
		DistrictID: uuid.New(),
		District:   &db_models.District{Name: "Langkawi"},
		Title:      "Couple Trip to Langkawi",
		StartDate:  mustDate(start),
		EndDate:    mustDate(end),
		Status:     status,
		TotalCost:  trip.TotalCost,
		Itinerary:  datatypes.NewJSONType(trip.Days),
		Preferences: datatypes.NewJSONType(db_models.PlanPreferences{
			TravelerCount: 2,
			TravelerType:  "Couple",
			Budget:        300,
			Interests:     []string{"Nature"},
		}),
	}
}
