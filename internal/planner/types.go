// Package planner turns a district's place catalog and a set of trip
// constraints into a day-by-day itinerary.
package planner

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryAttraction Category = "attraction"
	CategoryDining     Category = "dining"
)

type SlotType string

const (
	SlotAttraction SlotType = "attraction"
	SlotDining     SlotType = "dining"
	SlotTravel     SlotType = "travel"
)

// OpeningHours holds one "HH:MM-HH:MM" range per weekday. Weekdays listed in
// Closed are closed whatever their range says.
type OpeningHours struct {
	Monday    string   `json:"monday,omitempty"`
	Tuesday   string   `json:"tuesday,omitempty"`
	Wednesday string   `json:"wednesday,omitempty"`
	Thursday  string   `json:"thursday,omitempty"`
	Friday    string   `json:"friday,omitempty"`
	Saturday  string   `json:"saturday,omitempty"`
	Sunday    string   `json:"sunday,omitempty"`
	Closed    []string `json:"closed,omitempty"`
}

// Range returns the raw range string for the weekday.
func (o OpeningHours) Range(day time.Weekday) string {
	switch day {
	case time.Monday:
		return o.Monday
	case time.Tuesday:
		return o.Tuesday
	case time.Wednesday:
		return o.Wednesday
	case time.Thursday:
		return o.Thursday
	case time.Friday:
		return o.Friday
	case time.Saturday:
		return o.Saturday
	default:
		return o.Sunday
	}
}

func (o OpeningHours) ClosedOn(day time.Weekday) bool {
	name := weekdayName(day)
	for _, c := range o.Closed {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			return true
		}
	}
	return false
}

// EveryDay builds opening hours with the same range on all seven days.
func EveryDay(hours string, closed ...string) OpeningHours {
	return OpeningHours{
		Monday:    hours,
		Tuesday:   hours,
		Wednesday: hours,
		Thursday:  hours,
		Friday:    hours,
		Saturday:  hours,
		Sunday:    hours,
		Closed:    closed,
	}
}

type Place struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	DistrictID        string       `json:"district_id"`
	Tags              []string     `json:"tags"`
	AvgPrice          float64      `json:"avg_price"`
	Latitude          float64      `json:"latitude"`
	Longitude         float64      `json:"longitude"`
	OpeningHours      OpeningHours `json:"opening_hours"`
	SuggestedDuration int          `json:"suggested_duration"` // minutes
	Category          Category     `json:"category"`
	PopularityScore   float64      `json:"popularity_score"`
	Rating            float64      `json:"rating"`
	Active            bool         `json:"is_active"`
	Description       string       `json:"description,omitempty"`
}

type TimeSlot struct {
	Place      Place     `json:"place"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Type       SlotType  `json:"type"`
	TravelTime *int      `json:"travel_time,omitempty"`
}

type DayItinerary struct {
	Day       int        `json:"day"`
	Date      time.Time  `json:"date"`
	Slots     []TimeSlot `json:"slots"`
	TotalCost float64    `json:"total_cost"`
}

type TripItinerary struct {
	Days        []DayItinerary `json:"days"`
	TotalCost   float64        `json:"total_cost"`
	TotalPlaces int            `json:"total_places"`
}

// RemovePlace drops every slot referring to placeID and recomputes the day and
// trip costs. It reports whether anything was removed.
func (t *TripItinerary) RemovePlace(placeID string) bool {
	removed := false
	for i := range t.Days {
		kept := make([]TimeSlot, 0, len(t.Days[i].Slots))
		for _, slot := range t.Days[i].Slots {
			if slot.Place.ID == placeID {
				removed = true
				continue
			}
			kept = append(kept, slot)
		}
		t.Days[i].Slots = kept
	}
	if removed {
		t.Recalculate()
	}
	return removed
}

// Recalculate rebuilds every day cost from its slots and the trip total from
// the day costs.
func (t *TripItinerary) Recalculate() {
	t.TotalCost = 0
	for i := range t.Days {
		t.Days[i].TotalCost = DayCost(t.Days[i].Slots)
		t.TotalCost += t.Days[i].TotalCost
	}
}

// DayCost sums the price of every non-travel slot.
func DayCost(slots []TimeSlot) float64 {
	var total float64
	for _, s := range slots {
		if s.Type == SlotTravel {
			continue
		}
		total += s.Place.AvgPrice
	}
	return total
}

func weekdayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}
