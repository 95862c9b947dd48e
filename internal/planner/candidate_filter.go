package planner

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// MaxCandidates bounds the candidate pool handed to the route orderer.
const MaxCandidates = 15

var interestTags = map[string][]string{
	"Historical":    {"historical", "cultural"},
	"Art & Culture": {"art", "cultural", "museum"},
	"Entertainment": {"entertainment", "fun", "activities"},
	"Nature":        {"nature", "outdoor", "scenic", "beach"},
	"Food":          {"dining", "local-food", "food"},
	"Shopping":      {"shopping", "market"},
}

// Interests lists the interest categories a trip request may use.
func Interests() []string {
	names := make([]string, 0, len(interestTags))
	for name := range interestTags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func IsKnownInterest(name string) bool {
	_, ok := interestTags[name]
	return ok
}

// TagsForInterests unions the tags mapped from every interest. Unknown
// interests contribute nothing.
func TagsForInterests(interests []string) map[string]struct{} {
	tags := make(map[string]struct{})
	for _, interest := range interests {
		for _, tag := range interestTags[interest] {
			tags[tag] = struct{}{}
		}
	}
	return tags
}

type FilterRequest struct {
	DistrictID       string
	Interests        []string
	Budget           float64
	TravelerCount    int
	ExcludedPlaceIDs []string
}

// PerPersonCeiling is the highest average price a single traveler can afford.
// Traveler counts below one count as one.
func (r FilterRequest) PerPersonCeiling() float64 {
	travelers := r.TravelerCount
	if travelers < 1 {
		travelers = 1
	}
	return r.Budget / float64(travelers)
}

type CandidateFilter struct {
	catalog PlaceCatalog
	logger  *zap.Logger
}

func NewCandidateFilter(catalog PlaceCatalog, logger *zap.Logger) *CandidateFilter {
	return &CandidateFilter{catalog: catalog, logger: logger}
}

// Candidates returns at most MaxCandidates places ranked by popularity, then
// rating, then id. A failing catalog yields an empty pool.
func (f *CandidateFilter) Candidates(ctx context.Context, req FilterRequest) []Place {
	relevant := TagsForInterests(req.Interests)
	if len(relevant) == 0 {
		return []Place{}
	}

	ceiling := req.PerPersonCeiling()
	places, err := f.catalog.QueryPlaces(ctx, PlaceQuery{
		DistrictID: req.DistrictID,
		Categories: []Category{CategoryAttraction, CategoryDining},
		ActiveOnly: true,
		MaxPrice:   &ceiling,
		OrderBy:    OrderByPopularity,
	})
	if err != nil {
		f.logger.Warn("candidate query failed, continuing with empty pool",
			zap.String("district_id", req.DistrictID),
			zap.Error(err))
		return []Place{}
	}

	excluded := make(map[string]struct{}, len(req.ExcludedPlaceIDs))
	for _, id := range req.ExcludedPlaceIDs {
		excluded[id] = struct{}{}
	}

	pool := make([]Place, 0, len(places))
	for _, p := range places {
		if _, skip := excluded[p.ID]; skip {
			continue
		}
		if !hasAnyTag(p, relevant) {
			continue
		}
		pool = append(pool, p)
	}

	slices.SortStableFunc(pool, func(a, b Place) int {
		if c := cmp.Compare(b.PopularityScore, a.PopularityScore); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if len(pool) > MaxCandidates {
		pool = pool[:MaxCandidates]
	}
	return pool
}

func hasAnyTag(p Place, relevant map[string]struct{}) bool {
	for _, tag := range p.Tags {
		if _, ok := relevant[strings.ToLower(tag)]; ok {
			return true
		}
	}
	return false
}
