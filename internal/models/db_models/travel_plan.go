package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"jelajah/internal/planner"
)

const (
	PlanStatusActive    = "active"
	PlanStatusSaved     = "saved"
	PlanStatusCompleted = "completed"
)

// PlanPreferences keeps the inputs a plan was generated from.
type PlanPreferences struct {
	TravelerCount   int      `json:"traveler_count"`
	TravelerType    string   `json:"traveler_type"`
	Budget          float64  `json:"budget"`
	Interests       []string `json:"interests"`
	RemovedPlaceIDs []string `json:"removed_places"`
}

type TravelPlan struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	DistrictID  uuid.UUID `gorm:"type:uuid;index;not null"`
	District    *District
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	Status      string `gorm:"index;default:active"`
	TotalCost   float64
	Itinerary   datatypes.JSONType[[]planner.DayItinerary] `gorm:"type:jsonb"`
	Preferences datatypes.JSONType[PlanPreferences]        `gorm:"type:jsonb"`
}
