package db_models

import "github.com/google/uuid"

type Accommodation struct {
	BaseModel
	DistrictID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name          string    `gorm:"not null"`
	Type          string    // hotel, resort, homestay, ...
	PricePerNight float64
	Rating        float64
	Latitude      float64
	Longitude     float64
	Address       string
	IsActive      bool `gorm:"default:true"`
	ImageURL      string
}
