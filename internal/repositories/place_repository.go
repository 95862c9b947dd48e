package repositories

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"jelajah/internal/models/db_models"
	"jelajah/internal/planner"
)

// HighlightFilter narrows the discover listings. Zero values are ignored.
type HighlightFilter struct {
	Category      planner.Category
	MinRating     float64
	MaxPopularity float64
	Limit         int
}

type PlaceRepository interface {
	planner.PlaceCatalog

	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	ListByDistrict(ctx context.Context, districtID string, page, pageSize int) ([]db_models.Place, error)
	ListHighlights(ctx context.Context, filter HighlightFilter) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) QueryPlaces(ctx context.Context, q planner.PlaceQuery) ([]planner.Place, error) {
	ctx, span := otel.Tracer("PlaceRepository").Start(ctx, "QueryPlaces", trace.WithAttributes(
		attribute.String("district.id", q.DistrictID),
		attribute.Int("query.limit", q.Limit),
	))
	defer span.End()

	tx := r.db.WithContext(ctx).Model(&db_models.Place{})
	if q.DistrictID != "" {
		tx = tx.Where("district_id = ?", q.DistrictID)
	}
	if len(q.Categories) > 0 {
		categories := make([]string, 0, len(q.Categories))
		for _, c := range q.Categories {
			categories = append(categories, string(c))
		}
		tx = tx.Where("category IN ?", categories)
	}
	if q.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("avg_price <= ?", *q.MaxPrice)
	}
	switch q.OrderBy {
	case planner.OrderByRating:
		tx = tx.Order("rating DESC")
	case planner.OrderByPopularity:
		tx = tx.Order("popularity_score DESC").Order("rating DESC")
	}
	// id last so ties come back in the same order on every call
	tx = tx.Order("id")
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []db_models.Place
	if err := tx.Find(&rows).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query places failed")
		return nil, err
	}

	places := make([]planner.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, row.ToPlanner())
	}
	span.SetAttributes(attribute.Int("result.count", len(places)))
	span.SetStatus(codes.Ok, "places queried")
	return places, nil
}

// Read helpers return (nil, nil) when nothing matches.

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		Preload("District").
		First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) ListByDistrict(ctx context.Context, districtID string, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("district_id = ? AND is_active = ?", districtID, true).
		Order("popularity_score DESC").
		Order("rating DESC").
		Order("id").
		Offset(offset).
		Limit(pageSize).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListHighlights(ctx context.Context, filter HighlightFilter) ([]db_models.Place, error) {
	tx := r.db.WithContext(ctx).
		Preload("District").
		Where("is_active = ?", true)

	if filter.Category != "" {
		tx = tx.Where("category = ?", string(filter.Category))
	}
	if filter.MinRating > 0 {
		tx = tx.Where("rating >= ?", filter.MinRating)
	}
	if filter.MaxPopularity > 0 {
		tx = tx.Where("popularity_score < ?", filter.MaxPopularity)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var places []db_models.Place
	if err := tx.Order("rating DESC").Order("id").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}
