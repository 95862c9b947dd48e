package planner

import (
	"context"

	"go.uber.org/zap"
)

// DiningPoolSize is how many top-rated dining places are considered for lunch.
const DiningPoolSize = 10

type DiningLookup struct {
	catalog PlaceCatalog
	logger  *zap.Logger
}

func NewDiningLookup(catalog PlaceCatalog, logger *zap.Logger) *DiningLookup {
	return &DiningLookup{catalog: catalog, logger: logger}
}

// Options fetches the district's best rated active dining places. Errors are
// logged and reported as an empty pool.
func (d *DiningLookup) Options(ctx context.Context, districtID string) []Place {
	places, err := d.catalog.QueryPlaces(ctx, PlaceQuery{
		DistrictID: districtID,
		Categories: []Category{CategoryDining},
		ActiveOnly: true,
		OrderBy:    OrderByRating,
		Limit:      DiningPoolSize,
	})
	if err != nil {
		d.logger.Warn("dining query failed, lunch will be skipped",
			zap.String("district_id", districtID),
			zap.Error(err))
		return []Place{}
	}
	if len(places) > DiningPoolSize {
		places = places[:DiningPoolSize]
	}
	return places
}

// Nearest fetches the dining pool and returns the option closest to anchor.
func (d *DiningLookup) Nearest(ctx context.Context, districtID string, anchor Place) (Place, bool) {
	return NearestDining(d.Options(ctx, districtID), anchor, nil)
}

// NearestDining returns the option closest to anchor among those accepted by
// eligible (all of them when eligible is nil). The first of equally near
// options wins.
func NearestDining(options []Place, anchor Place, eligible func(Place) bool) (Place, bool) {
	var (
		closest Place
		best    float64
		found   bool
	)
	for _, option := range options {
		if eligible != nil && !eligible(option) {
			continue
		}
		d := distanceBetween(anchor, option)
		if !found || d < best {
			closest, best, found = option, d, true
		}
	}
	return closest, found
}
