package repositories

import (
	"context"

	"gorm.io/gorm"
	"jelajah/internal/models/db_models"
)

type AccommodationRepository interface {
	TopByDistrict(ctx context.Context, districtID string, limit int) ([]db_models.Accommodation, error)
	// BestPerDistrict returns the highest rated active accommodation of every
	// district that has one.
	BestPerDistrict(ctx context.Context) ([]db_models.Accommodation, error)
}

type accommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) AccommodationRepository {
	return &accommodationRepository{db: db}
}

func (r *accommodationRepository) TopByDistrict(ctx context.Context, districtID string, limit int) ([]db_models.Accommodation, error) {
	var rows []db_models.Accommodation
	err := r.db.WithContext(ctx).
		Where("district_id = ? AND is_active = ?", districtID, true).
		Order("rating DESC").
		Order("id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *accommodationRepository) BestPerDistrict(ctx context.Context) ([]db_models.Accommodation, error) {
	var rows []db_models.Accommodation
	err := r.db.WithContext(ctx).
		Select("DISTINCT ON (district_id) *").
		Where("is_active = ?", true).
		Order("district_id").
		Order("rating DESC").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
