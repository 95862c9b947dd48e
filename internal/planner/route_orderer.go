package planner

import "math"

// OrderByProximity arranges places into a visiting sequence with a greedy
// nearest-neighbor walk starting at the first place. When two places are
// equally near, the one earlier in the input wins, so the result is
// deterministic for a given input order.
//
// The tour is a heuristic and not globally optimal.
func OrderByProximity(places []Place) []Place {
	if len(places) == 0 {
		return []Place{}
	}

	remaining := make([]Place, len(places)-1)
	copy(remaining, places[1:])

	current := places[0]
	ordered := make([]Place, 0, len(places))
	ordered = append(ordered, current)

	for len(remaining) > 0 {
		nearest := 0
		best := math.Inf(1)
		for i, candidate := range remaining {
			if d := distanceBetween(current, candidate); d < best {
				best = d
				nearest = i
			}
		}

		current = remaining[nearest]
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
		ordered = append(ordered, current)
	}

	return ordered
}
