package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderByProximity(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := OrderByProximity(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("single place", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, ids(OrderByProximity([]Place{attraction("a", 0, 0, 60)})))
	})

	t.Run("walks to the nearest unvisited place", func(t *testing.T) {
		places := []Place{
			attraction("start", 0, 0, 60),
			attraction("far", 0, 3, 60),
			attraction("near", 0, 1, 60),
			attraction("middle", 0, 2, 60),
		}
		assert.Equal(t, []string{"start", "near", "middle", "far"}, ids(OrderByProximity(places)))
	})

	t.Run("starts at the highest ranked place even when it is remote", func(t *testing.T) {
		places := []Place{
			attraction("remote", 10, 10, 60),
			attraction("a", 0, 0, 60),
			attraction("b", 0, 0.1, 60),
		}
		got := OrderByProximity(places)
		assert.Equal(t, "remote", got[0].ID)
		assert.Len(t, got, 3)
	})

	t.Run("ties go to the earlier place", func(t *testing.T) {
		places := []Place{
			attraction("start", 0, 0, 60),
			attraction("east", 0, 1, 60),
			attraction("west", 0, -1, 60),
		}
		assert.Equal(t, []string{"start", "east", "west"}, ids(OrderByProximity(places)))
	})

	t.Run("does not modify the input", func(t *testing.T) {
		places := []Place{
			attraction("a", 0, 0, 60),
			attraction("c", 0, 2, 60),
			attraction("b", 0, 1, 60),
		}
		OrderByProximity(places)
		assert.Equal(t, []string{"a", "c", "b"}, ids(places))
	})
}
