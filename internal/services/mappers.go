package services

import (
	"jelajah/internal/models/db_models"
	"jelajah/internal/models/response_models"
	"jelajah/internal/planner"
	"jelajah/pkg/utils"
)

func toDistrictResponse(d db_models.District) response_models.District {
	return response_models.District{
		ID:          d.ID.String(),
		Name:        d.Name,
		NameMs:      d.NameMs,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
}

func toPlaceResponse(p db_models.Place) response_models.Place {
	resp := response_models.Place{
		ID:                p.ID.String(),
		Name:              p.Name,
		Description:       p.Description,
		DistrictID:        p.DistrictID.String(),
		Category:          p.Category,
		Tags:              []string(p.Tags),
		AvgPrice:          p.AvgPrice,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		OpeningHours:      p.OpeningHours.Data(),
		SuggestedDuration: p.SuggestedDuration,
		PopularityScore:   p.PopularityScore,
		Rating:            p.Rating,
		ImageURL:          p.ImageURL,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if p.District != nil {
		resp.DistrictName = p.District.Name
	}
	return resp
}

func toPlaceResponses(places []db_models.Place) []response_models.Place {
	out := make([]response_models.Place, 0, len(places))
	for _, p := range places {
		out = append(out, toPlaceResponse(p))
	}
	return out
}

func toAccommodationResponse(a db_models.Accommodation, districtName string) response_models.Accommodation {
	return response_models.Accommodation{
		ID:            a.ID.String(),
		Name:          a.Name,
		DistrictID:    a.DistrictID.String(),
		DistrictName:  districtName,
		Type:          a.Type,
		PricePerNight: a.PricePerNight,
		Rating:        a.Rating,
		Address:       a.Address,
		ImageURL:      a.ImageURL,
	}
}

func toPlanSummary(p db_models.TravelPlan) response_models.PlanSummary {
	summary := response_models.PlanSummary{
		ID:         p.ID.String(),
		Title:      p.Title,
		DistrictID: p.DistrictID.String(),
		StartDate:  utils.FormatDateMY(p.StartDate),
		EndDate:    utils.FormatDateMY(p.EndDate),
		Status:     p.Status,
		TotalCost:  p.TotalCost,
		PlaceCount: countPlaces(p.Itinerary.Data()),
	}
	if p.District != nil {
		summary.DistrictName = p.District.Name
	}
	return summary
}

func toPlanDetail(p db_models.TravelPlan, accommodations []response_models.Accommodation) response_models.PlanDetail {
	prefs := p.Preferences.Data()
	days := p.Itinerary.Data()
	if days == nil {
		days = []planner.DayItinerary{}
	}
	removed := prefs.RemovedPlaceIDs
	if removed == nil {
		removed = []string{}
	}
	return response_models.PlanDetail{
		PlanSummary:     toPlanSummary(p),
		TravelerCount:   prefs.TravelerCount,
		TravelerType:    prefs.TravelerType,
		Budget:          prefs.Budget,
		Interests:       prefs.Interests,
		RemovedPlaceIDs: removed,
		Days:            days,
		Accommodations:  accommodations,
	}
}

// countPlaces counts distinct places across all non-travel slots.
func countPlaces(days []planner.DayItinerary) int {
	seen := make(map[string]struct{})
	for _, day := range days {
		for _, slot := range day.Slots {
			if slot.Type == planner.SlotTravel {
				continue
			}
			seen[slot.Place.ID] = struct{}{}
		}
	}
	return len(seen)
}
