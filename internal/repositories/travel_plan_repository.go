package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"jelajah/internal/models/db_models"
)

type TravelPlanRepository interface {
	Create(ctx context.Context, plan *db_models.TravelPlan) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.TravelPlan, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.TravelPlan, error)

	// UpdateStatus and Delete report false when no plan with that id belongs
	// to the user.
	UpdateStatus(ctx context.Context, id, userID, status string) (bool, error)
	Delete(ctx context.Context, id, userID string) (bool, error)

	// UpdateWithLock loads the user's plan with a row lock, applies mutate and
	// saves it in the same transaction. A missing plan yields
	// gorm.ErrRecordNotFound.
	UpdateWithLock(ctx context.Context, id, userID string, mutate func(*db_models.TravelPlan) error) error
}

type travelPlanRepository struct {
	db *gorm.DB
}

func NewTravelPlanRepository(db *gorm.DB) TravelPlanRepository {
	return &travelPlanRepository{db: db}
}

func (r *travelPlanRepository) Create(ctx context.Context, plan *db_models.TravelPlan) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(plan).Error; err != nil {
		return uuid.Nil, err
	}
	return plan.ID, nil
}

func (r *travelPlanRepository) GetByID(ctx context.Context, id string) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := r.db.WithContext(ctx).
		Preload("District").
		First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *travelPlanRepository) ListByUser(ctx context.Context, userID string) ([]db_models.TravelPlan, error) {
	var plans []db_models.TravelPlan
	err := r.db.WithContext(ctx).
		Preload("District").
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *travelPlanRepository) UpdateStatus(ctx context.Context, id, userID, status string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.TravelPlan{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *travelPlanRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.TravelPlan{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *travelPlanRepository) UpdateWithLock(ctx context.Context, id, userID string, mutate func(*db_models.TravelPlan) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan db_models.TravelPlan
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, userID).
			First(&plan).Error
		if err != nil {
			return err
		}

		if err := mutate(&plan); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(&plan).Error; err != nil {
			return fmt.Errorf("failed to save travel plan: %w", err)
		}
		return nil
	})
}
