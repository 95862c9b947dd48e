package planner

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TripRequest struct {
	DistrictID       string
	Interests        []string
	Budget           float64
	TravelerCount    int
	StartDate        time.Time
	DayCount         int
	ExcludedPlaceIDs []string
}

func (r TripRequest) filterRequest() FilterRequest {
	return FilterRequest{
		DistrictID:       r.DistrictID,
		Interests:        r.Interests,
		Budget:           r.Budget,
		TravelerCount:    r.TravelerCount,
		ExcludedPlaceIDs: r.ExcludedPlaceIDs,
	}
}

type Generator struct {
	filter *CandidateFilter
	dining *DiningLookup
	opts   ScheduleOptions
	logger *zap.Logger
}

func NewGenerator(catalog PlaceCatalog, logger *zap.Logger) *Generator {
	return &Generator{
		filter: NewCandidateFilter(catalog, logger),
		dining: NewDiningLookup(catalog, logger),
		opts:   DefaultScheduleOptions(),
		logger: logger,
	}
}

// GenerateTrip builds a trip itinerary. It never fails: catalog errors
// degrade to an itinerary with empty days.
func (g *Generator) GenerateTrip(ctx context.Context, req TripRequest) TripItinerary {
	ctx, span := otel.Tracer("TripGenerator").Start(ctx, "GenerateTrip", trace.WithAttributes(
		attribute.String("district.id", req.DistrictID),
		attribute.Int("trip.days", req.DayCount),
		attribute.Int("trip.excluded", len(req.ExcludedPlaceIDs)),
	))
	defer span.End()

	// both fetches depend only on the request, never on scheduling state
	var candidates, dining []Place
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		candidates = g.filter.Candidates(egCtx, req.filterRequest())
		return nil
	})
	eg.Go(func() error {
		dining = withoutPlaces(g.dining.Options(egCtx, req.DistrictID), req.ExcludedPlaceIDs)
		return nil
	})
	_ = eg.Wait()

	ordered := OrderByProximity(candidates)
	itinerary := BuildItinerary(ordered, dining, req.StartDate, req.DayCount, g.opts)

	g.logger.Debug("trip generated",
		zap.String("district_id", req.DistrictID),
		zap.Int("candidates", len(candidates)),
		zap.Int("dining_options", len(dining)),
		zap.Int("consumed", itinerary.TotalPlaces),
		zap.Float64("total_cost", itinerary.TotalCost))

	span.SetAttributes(
		attribute.Int("trip.candidates", len(candidates)),
		attribute.Int("trip.consumed", itinerary.TotalPlaces),
	)
	span.SetStatus(codes.Ok, "trip generated")
	return itinerary
}

// BuildItinerary walks the ordered places day by day from startDate. Exactly
// dayCount days are produced, empty ones included.
func BuildItinerary(ordered, dining []Place, startDate time.Time, dayCount int, opts ScheduleOptions) TripItinerary {
	if dayCount < 0 {
		dayCount = 0
	}

	y, m, d := startDate.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, startDate.Location())

	days := make([]DayItinerary, 0, dayCount)
	cursor := NewCursor()
	var total float64
	for i := 0; i < dayCount; i++ {
		var day DayItinerary
		day, cursor = ScheduleDay(DayInput{
			Day:    i + 1,
			Date:   first.AddDate(0, 0, i),
			Places: ordered,
			Dining: dining,
		}, cursor, opts)
		days = append(days, day)
		total += day.TotalCost
	}

	return TripItinerary{
		Days:        days,
		TotalCost:   total,
		TotalPlaces: cursor.Position(),
	}
}

func withoutPlaces(places []Place, ids []string) []Place {
	if len(ids) == 0 {
		return places
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := make([]Place, 0, len(places))
	for _, p := range places {
		if _, ok := drop[p.ID]; !ok {
			kept = append(kept, p)
		}
	}
	return kept
}
