package planner

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsForInterests(t *testing.T) {
	tags := TagsForInterests([]string{"Nature", "Food", "Underwater Basket Weaving"})

	for _, want := range []string{"nature", "outdoor", "scenic", "beach", "dining", "local-food", "food"} {
		assert.Contains(t, tags, want)
	}
	assert.Len(t, tags, 7)
	assert.Empty(t, TagsForInterests(nil))
}

func TestInterests(t *testing.T) {
	assert.Equal(t,
		[]string{"Art & Culture", "Entertainment", "Food", "Historical", "Nature", "Shopping"},
		Interests())
	assert.True(t, IsKnownInterest("Art & Culture"))
	assert.False(t, IsKnownInterest("art & culture"))
}

func TestPerPersonCeiling(t *testing.T) {
	assert.Equal(t, 500.0, FilterRequest{Budget: 1000, TravelerCount: 2}.PerPersonCeiling())
	assert.Equal(t, 1000.0, FilterRequest{Budget: 1000, TravelerCount: 0}.PerPersonCeiling())
	assert.Equal(t, 1000.0, FilterRequest{Budget: 1000, TravelerCount: -3}.PerPersonCeiling())
}

func TestCandidateFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("no interests means no candidates and no query", func(t *testing.T) {
		catalog := &fakeCatalog{places: []Place{attraction("a", 0, 0, 60, "nature")}}
		got := NewCandidateFilter(catalog, testLogger()).Candidates(ctx, FilterRequest{
			DistrictID: "kota-setar", Budget: 100, TravelerCount: 1,
		})
		assert.Empty(t, got)
		assert.NotNil(t, got)
		assert.Zero(t, catalog.queryCount())
	})

	t.Run("queries district, categories, active and price ceiling", func(t *testing.T) {
		catalog := &fakeCatalog{}
		NewCandidateFilter(catalog, testLogger()).Candidates(ctx, FilterRequest{
			DistrictID: "langkawi", Interests: []string{"Nature"}, Budget: 300, TravelerCount: 3,
		})
		require.Len(t, catalog.queries, 1)
		q := catalog.queries[0]
		assert.Equal(t, "langkawi", q.DistrictID)
		assert.ElementsMatch(t, []Category{CategoryAttraction, CategoryDining}, q.Categories)
		assert.True(t, q.ActiveOnly)
		assert.Equal(t, OrderByPopularity, q.OrderBy)
		require.NotNil(t, q.MaxPrice)
		assert.Equal(t, 100.0, *q.MaxPrice)
	})

	t.Run("filters by tag, exclusion, price and activity", func(t *testing.T) {
		cheap := attraction("cheap", 0, 0, 60, "Nature")
		pricey := attraction("pricey", 0, 0, 60, "nature")
		pricey.AvgPrice = 80
		inactive := attraction("inactive", 0, 0, 60, "beach")
		inactive.Active = false
		excluded := attraction("excluded", 0, 0, 60, "scenic")
		offTopic := attraction("mall", 0, 0, 60, "shopping")
		otherDistrict := attraction("elsewhere", 0, 0, 60, "nature")
		otherDistrict.DistrictID = "langkawi"

		catalog := &fakeCatalog{places: []Place{cheap, pricey, inactive, excluded, offTopic, otherDistrict}}
		got := NewCandidateFilter(catalog, testLogger()).Candidates(ctx, FilterRequest{
			DistrictID:       "kota-setar",
			Interests:        []string{"Nature"},
			Budget:           100,
			TravelerCount:    2,
			ExcludedPlaceIDs: []string{"excluded"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "cheap", got[0].ID)
	})

	t.Run("ranks by popularity then rating", func(t *testing.T) {
		a := attraction("a", 0, 0, 60, "nature")
		a.PopularityScore, a.Rating = 70, 4.9
		b := attraction("b", 0, 0, 60, "nature")
		b.PopularityScore, b.Rating = 90, 3.0
		c := attraction("c", 0, 0, 60, "nature")
		c.PopularityScore, c.Rating = 70, 4.95
		d := attraction("d", 0, 0, 60, "nature")
		d.PopularityScore, d.Rating = 70, 4.9

		catalog := &fakeCatalog{places: []Place{a, b, c, d}}
		got := NewCandidateFilter(catalog, testLogger()).Candidates(ctx, FilterRequest{
			DistrictID: "kota-setar", Interests: []string{"Nature"}, Budget: 100, TravelerCount: 1,
		})

		require.Len(t, got, 4)
		assert.Equal(t, []string{"b", "c", "a", "d"}, ids(got))
	})

	t.Run("equal ranks fall back to id whatever the row order", func(t *testing.T) {
		var places []Place
		for _, id := range []string{"e", "b", "a", "d", "c"} {
			p := attraction(id, 0, 0, 60, "nature")
			p.PopularityScore, p.Rating = 80, 4.5
			places = append(places, p)
		}
		req := FilterRequest{DistrictID: "kota-setar", Interests: []string{"Nature"}, Budget: 100, TravelerCount: 1}

		forward := NewCandidateFilter(rowOrderCatalog{places: places}, testLogger()).Candidates(ctx, req)
		backward := NewCandidateFilter(rowOrderCatalog{places: places, reverse: true}, testLogger()).Candidates(ctx, req)

		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(forward))
		assert.Equal(t, ids(forward), ids(backward))
	})

	t.Run("truncates to the candidate limit", func(t *testing.T) {
		var places []Place
		for i := 0; i < 40; i++ {
			p := attraction(fmt.Sprintf("p%02d", i), 0, 0, 60, "historical")
			p.PopularityScore = float64(i)
			places = append(places, p)
		}
		got := NewCandidateFilter(&fakeCatalog{places: places}, testLogger()).Candidates(ctx, FilterRequest{
			DistrictID: "kota-setar", Interests: []string{"Historical"}, Budget: 100, TravelerCount: 1,
		})
		require.Len(t, got, MaxCandidates)
		assert.Equal(t, "p39", got[0].ID)
		assert.Equal(t, "p25", got[MaxCandidates-1].ID)
	})

	t.Run("catalog failure yields an empty pool", func(t *testing.T) {
		catalog := &fakeCatalog{
			places: []Place{attraction("a", 0, 0, 60, "nature")},
			fail:   func(PlaceQuery) error { return errors.New("connection refused") },
		}
		got := NewCandidateFilter(catalog, testLogger()).Candidates(ctx, FilterRequest{
			DistrictID: "kota-setar", Interests: []string{"Nature"}, Budget: 100, TravelerCount: 1,
		})
		assert.Empty(t, got)
	})
}

// rowOrderCatalog returns its places unsorted, optionally reversed, the way a
// database may hand back rows that tie on every ORDER BY column.
type rowOrderCatalog struct {
	places  []Place
	reverse bool
}

func (c rowOrderCatalog) QueryPlaces(context.Context, PlaceQuery) ([]Place, error) {
	out := slices.Clone(c.places)
	if c.reverse {
		slices.Reverse(out)
	}
	return out, nil
}

func ids(places []Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.ID)
	}
	return out
}
