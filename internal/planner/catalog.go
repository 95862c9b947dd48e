package planner

import "context"

type OrderBy int

const (
	OrderNone OrderBy = iota
	OrderByRating
	OrderByPopularity
)

// PlaceQuery describes a catalog lookup. Zero values mean "no constraint".
type PlaceQuery struct {
	DistrictID string
	Categories []Category
	ActiveOnly bool
	MaxPrice   *float64
	OrderBy    OrderBy
	Limit      int
}

// PlaceCatalog is the read side of the place store used during generation.
type PlaceCatalog interface {
	QueryPlaces(ctx context.Context, q PlaceQuery) ([]Place, error)
}
