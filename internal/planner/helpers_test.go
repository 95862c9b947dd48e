package planner

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
)

// fakeCatalog applies PlaceQuery semantics to an in-memory slice.
type fakeCatalog struct {
	mu      sync.Mutex
	places  []Place
	fail    func(PlaceQuery) error
	queries []PlaceQuery
}

func (f *fakeCatalog) QueryPlaces(_ context.Context, q PlaceQuery) ([]Place, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	if f.fail != nil {
		if err := f.fail(q); err != nil {
			return nil, err
		}
	}

	out := make([]Place, 0, len(f.places))
	for _, p := range f.places {
		if q.DistrictID != "" && p.DistrictID != q.DistrictID {
			continue
		}
		if len(q.Categories) > 0 && !slices.Contains(q.Categories, p.Category) {
			continue
		}
		if q.ActiveOnly && !p.Active {
			continue
		}
		if q.MaxPrice != nil && p.AvgPrice > *q.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch q.OrderBy {
	case OrderByRating:
		slices.SortStableFunc(out, func(a, b Place) int {
			if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
	case OrderByPopularity:
		slices.SortStableFunc(out, func(a, b Place) int {
			if c := cmp.Compare(b.PopularityScore, a.PopularityScore); c != 0 {
				return c
			}
			if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeCatalog) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func diningOnly(q PlaceQuery) bool {
	return len(q.Categories) == 1 && q.Categories[0] == CategoryDining
}

func attraction(id string, lat, lon float64, duration int, tags ...string) Place {
	return Place{
		ID:                id,
		Name:              "Place " + id,
		DistrictID:        "kota-setar",
		Tags:              tags,
		AvgPrice:          10,
		Latitude:          lat,
		Longitude:         lon,
		OpeningHours:      EveryDay("08:00-20:00"),
		SuggestedDuration: duration,
		Category:          CategoryAttraction,
		PopularityScore:   50,
		Rating:            4,
		Active:            true,
	}
}

func restaurant(id string, lat, lon float64, rating float64) Place {
	p := attraction(id, lat, lon, 60, "food")
	p.Category = CategoryDining
	p.Rating = rating
	p.AvgPrice = 15
	return p
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

var kualaLumpur = time.FixedZone("MYT", 8*3600)

// 2025-01-06 is a Monday.
func monday() time.Time {
	return time.Date(2025, time.January, 6, 0, 0, 0, 0, kualaLumpur)
}

func at(day time.Time, hour, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, day.Location())
}
