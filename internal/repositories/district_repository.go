package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"jelajah/internal/models/db_models"
)

type DistrictRepository interface {
	List(ctx context.Context) ([]db_models.District, error)
	GetByID(ctx context.Context, id string) (*db_models.District, error)
}

type districtRepository struct {
	db *gorm.DB
}

func NewDistrictRepository(db *gorm.DB) DistrictRepository {
	return &districtRepository{db: db}
}

func (r *districtRepository) List(ctx context.Context) ([]db_models.District, error) {
	var districts []db_models.District
	if err := r.db.WithContext(ctx).Order("name").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

func (r *districtRepository) GetByID(ctx context.Context, id string) (*db_models.District, error) {
	var district db_models.District
	err := r.db.WithContext(ctx).First(&district, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &district, nil
}
