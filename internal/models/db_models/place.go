package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"jelajah/internal/planner"
)

type Place struct {
	BaseModel
	DistrictID        uuid.UUID `gorm:"type:uuid;index;not null"`
	District          *District
	Name              string `gorm:"not null"`
	Description       string
	Tags              pq.StringArray `gorm:"type:text[]"`
	AvgPrice          float64        `gorm:"index"`
	Latitude          float64
	Longitude         float64
	OpeningHours      datatypes.JSONType[planner.OpeningHours] `gorm:"type:jsonb"`
	SuggestedDuration int                                      `gorm:"default:60"` // minutes
	Category          string                                   `gorm:"index;not null"`
	PopularityScore   float64
	Rating            float64
	IsActive          bool `gorm:"default:true;index"`
	ImageURL          string
}

// ToPlanner converts the row into the planner's read model.
func (p Place) ToPlanner() planner.Place {
	return planner.Place{
		ID:                p.ID.String(),
		Name:              p.Name,
		DistrictID:        p.DistrictID.String(),
		Tags:              []string(p.Tags),
		AvgPrice:          p.AvgPrice,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		OpeningHours:      p.OpeningHours.Data(),
		SuggestedDuration: p.SuggestedDuration,
		Category:          planner.Category(p.Category),
		PopularityScore:   p.PopularityScore,
		Rating:            p.Rating,
		Active:            p.IsActive,
		Description:       p.Description,
	}
}
