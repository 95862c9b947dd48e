package response_models

import "jelajah/internal/planner"

type PlanSummary struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	DistrictID   string  `json:"district_id"`
	DistrictName string  `json:"district_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Status       string  `json:"status"`
	TotalCost    float64 `json:"total_cost"`
	PlaceCount   int     `json:"place_count"`
}

type PlanDetail struct {
	PlanSummary
	TravelerCount   int                    `json:"traveler_count"`
	TravelerType    string                 `json:"traveler_type"`
	Budget          float64                `json:"budget"`
	Interests       []string               `json:"interests"`
	RemovedPlaceIDs []string               `json:"removed_place_ids"`
	Days            []planner.DayItinerary `json:"days"`
	Accommodations  []Accommodation        `json:"accommodations"`
}

// PlanCollections groups a user's plans the way the trips screen lists them.
type PlanCollections struct {
	Upcoming []PlanSummary `json:"upcoming"`
	Past     []PlanSummary `json:"past"`
	Saved    []PlanSummary `json:"saved"`
}
