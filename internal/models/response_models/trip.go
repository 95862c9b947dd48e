package response_models

import "jelajah/internal/planner"

// TripDraft is a generated itinerary that has not been saved yet.
type TripDraft struct {
	DraftID         string                `json:"draft_id"`
	DistrictID      string                `json:"district_id"`
	DistrictName    string                `json:"district_name"`
	TravelerCount   int                   `json:"traveler_count"`
	TravelerType    string                `json:"traveler_type"`
	StartDate       string                `json:"start_date"`
	EndDate         string                `json:"end_date"`
	DayCount        int                   `json:"day_count"`
	Budget          float64               `json:"budget"`
	Interests       []string              `json:"interests"`
	RemovedPlaceIDs []string              `json:"removed_place_ids"`
	Itinerary       planner.TripItinerary `json:"itinerary"`
}
