package response_models

import "jelajah/internal/planner"

type Place struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	Description       string               `json:"description,omitempty"`
	DistrictID        string               `json:"district_id"`
	DistrictName      string               `json:"district_name,omitempty"`
	Category          string               `json:"category"`
	Tags              []string             `json:"tags"`
	AvgPrice          float64              `json:"avg_price"`
	Latitude          float64              `json:"latitude"`
	Longitude         float64              `json:"longitude"`
	OpeningHours      planner.OpeningHours `json:"opening_hours"`
	SuggestedDuration int                  `json:"suggested_duration"`
	PopularityScore   float64              `json:"popularity_score"`
	Rating            float64              `json:"rating"`
	ImageURL          string               `json:"image_url,omitempty"`
}

type Accommodation struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DistrictID    string  `json:"district_id"`
	DistrictName  string  `json:"district_name,omitempty"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	Address       string  `json:"address,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
}

type DiscoverPage struct {
	Trendy         []Place         `json:"trendy"`
	HiddenGems     []Place         `json:"hidden_gems"`
	Accommodations []Accommodation `json:"accommodations"`
}
