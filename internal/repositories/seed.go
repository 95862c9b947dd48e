package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"jelajah/internal/models/db_models"
	"jelajah/internal/planner"
)

type PlaceSeed struct {
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Tags         []string             `json:"tags"`
	AvgPrice     float64              `json:"avg_price"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	OpeningHours planner.OpeningHours `json:"opening_hours"`
	// DailyHours sets the same range on every weekday; opening_hours.closed still applies.
	DailyHours        string  `json:"daily_hours"`
	SuggestedDuration int     `json:"suggested_duration"`
	Category          string  `json:"category"`
	PopularityScore   float64 `json:"popularity_score"`
	Rating            float64 `json:"rating"`
	ImageURL          string  `json:"image_url"`
}

type AccommodationSeed struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Address       string  `json:"address"`
}

type DistrictSeed struct {
	Name           string              `json:"name"`
	NameMs         string              `json:"name_ms"`
	Description    string              `json:"description"`
	Places         []PlaceSeed         `json:"places"`
	Accommodations []AccommodationSeed `json:"accommodations"`
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(db_models.AllModels()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedFromJSON loads districts with their places and accommodations. Districts
// that already exist are left untouched, so the seed can be re-run.
func SeedFromJSON(ctx context.Context, db *gorm.DB, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed districts: read %q: %w", jsonPath, err)
	}

	var data []DistrictSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed districts: parse json: %w", err)
	}
	if err := validateSeeds(data); err != nil {
		return 0, err
	}

	created := 0
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range data {
			var existing db_models.District
			err := tx.Where("name = ?", item.Name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("seed districts: lookup %q: %w", item.Name, err)
			}

			district := buildDistrict(item)
			if err := tx.Create(&district).Error; err != nil {
				return fmt.Errorf("seed districts: insert %q: %w", item.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func validateSeeds(data []DistrictSeed) error {
	for i, d := range data {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("seed districts: district at index %d: name cannot be empty", i+1)
		}
		for j, p := range d.Places {
			if strings.TrimSpace(p.Name) == "" {
				return fmt.Errorf("seed districts: %s place at index %d: name cannot be empty", d.Name, j+1)
			}
			category := planner.Category(p.Category)
			if category != planner.CategoryAttraction && category != planner.CategoryDining {
				return fmt.Errorf("seed districts: %s place %q: unknown category %q", d.Name, p.Name, p.Category)
			}
			if p.AvgPrice < 0 {
				return fmt.Errorf("seed districts: %s place %q: negative price", d.Name, p.Name)
			}
		}
	}
	return nil
}

func openingHours(p PlaceSeed) planner.OpeningHours {
	if p.DailyHours == "" {
		return p.OpeningHours
	}
	return planner.EveryDay(p.DailyHours, p.OpeningHours.Closed...)
}

func buildDistrict(item DistrictSeed) db_models.District {
	district := db_models.District{
		Name:        strings.TrimSpace(item.Name),
		NameMs:      item.NameMs,
		Description: item.Description,
	}
	for _, p := range item.Places {
		duration := p.SuggestedDuration
		if duration <= 0 {
			duration = 60
		}
		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, strings.ToLower(strings.TrimSpace(t)))
		}
		district.Places = append(district.Places, db_models.Place{
			Name:              p.Name,
			Description:       p.Description,
			Tags:              pq.StringArray(tags),
			AvgPrice:          p.AvgPrice,
			Latitude:          p.Latitude,
			Longitude:         p.Longitude,
			OpeningHours:      datatypes.NewJSONType(openingHours(p)),
			SuggestedDuration: duration,
			Category:          p.Category,
			PopularityScore:   p.PopularityScore,
			Rating:            p.Rating,
			IsActive:          true,
			ImageURL:          p.ImageURL,
		})
	}
	for _, a := range item.Accommodations {
		district.Accommodations = append(district.Accommodations, db_models.Accommodation{
			Name:          a.Name,
			Type:          a.Type,
			PricePerNight: a.PricePerNight,
			Rating:        a.Rating,
			Latitude:      a.Latitude,
			Longitude:     a.Longitude,
			Address:       a.Address,
			IsActive:      true,
		})
	}
	return district
}
