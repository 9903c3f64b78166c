package repository

import (
	"context"
	"errors"
	"fmt"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

const topPlacesLimit = 3

type PlaceRepository interface {
	GetAll(ctx context.Context) ([]models.PlaceWithStats, error)
	GetByID(ctx context.Context, id int64) (*models.PlaceWithStats, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Place, error)
	Create(ctx context.Context, place *models.Place) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	IncrementViewCount(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context, category string) (int64, error)
	GetViewStats(ctx context.Context) (*models.ViewStats, error)
}

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository returns a gorm-backed PlaceRepository. A nil db puts the
// repository in degraded mode: reads return empty results and writes fail
// with apperror.ErrStoreUnavailable.
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// placeStatsRow receives the aggregate columns as text, see parseFloat.
type placeStatsRow struct {
	models.Place
	AvgRating   string
	ReviewCount string
}

func (row placeStatsRow) toModel() models.PlaceWithStats {
	return models.PlaceWithStats{
		Place:       row.Place,
		AvgRating:   parseFloat(row.AvgRating),
		ReviewCount: parseInt(row.ReviewCount),
	}
}

// withStats selects every place column plus its rating aggregates over live review rows.
func (r *placeRepository) withStats(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Place{}).
		Select("places.*, " +
			"COALESCE(AVG(reviews.rating), 0) AS avg_rating, " +
			"COALESCE(COUNT(DISTINCT reviews.id), 0) AS review_count").
		Joins("LEFT JOIN reviews ON reviews.place_id = places.id").
		Group("places.id")
}

// GetAll lists every place with avgRating/reviewCount, newest first.
func (r *placeRepository) GetAll(ctx context.Context) ([]models.PlaceWithStats, error) {
	if r.db == nil {
		return []models.PlaceWithStats{}, nil
	}

	var rows []placeStatsRow
	if err := r.withStats(ctx).
		Order("places.created_at DESC, places.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	list := make([]models.PlaceWithStats, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toModel())
	}
	return list, nil
}

// GetByID returns (nil, nil) when no place has the given id.
func (r *placeRepository) GetByID(ctx context.Context, id int64) (*models.PlaceWithStats, error) {
	if r.db == nil {
		return nil, nil
	}

	var rows []placeStatsRow
	if err := r.withStats(ctx).
		Where("places.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get place %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	place := rows[0].toModel()
	return &place, nil
}

// GetByIDs fetches the given places in a single query. Order is unspecified and
// unknown ids are skipped.
func (r *placeRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Place, error) {
	if r.db == nil || len(ids) == 0 {
		return []models.Place{}, nil
	}

	var list []models.Place
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get places by ids: %w", err)
	}
	return list, nil
}

func (r *placeRepository) Create(ctx context.Context, place *models.Place) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		return fmt.Errorf("create place: %w", err)
	}
	return nil
}

// Update applies only the given columns. Updating a missing place is a no-op.
func (r *placeRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Place{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return fmt.Errorf("update place %d: %w", id, err)
	}
	return nil
}

func (r *placeRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if err := r.db.WithContext(ctx).Delete(&models.Place{}, id).Error; err != nil {
		return fmt.Errorf("delete place %d: %w", id, err)
	}
	return nil
}

// IncrementViewCount bumps the counter in a single UPDATE evaluated by the
// database, so concurrent visits never lose a count.
func (r *placeRepository) IncrementViewCount(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	err := r.db.WithContext(ctx).
		Model(&models.Place{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("increment view count for place %d: %w", id, err)
	}
	return nil
}

func (r *placeRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	if r.db == nil {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Place{}).Where("category = ?", category).Count(&count).Error
	return count, err
}

// GetViewStats runs three independent reads: the grand total, per-category
// sums and the top places by view count.
func (r *placeRepository) GetViewStats(ctx context.Context) (*models.ViewStats, error) {
	stats := models.EmptyViewStats()
	if r.db == nil {
		return stats, nil
	}
	db := r.db.WithContext(ctx)

	var total struct {
		Total string
	}
	if err := db.Model(&models.Place{}).
		Select("COALESCE(SUM(view_count), 0) AS total").
		Scan(&total).Error; err != nil {
		return nil, fmt.Errorf("sum views: %w", err)
	}
	stats.TotalViews = parseInt(total.Total)

	var byCategory []struct {
		Category string
		Count    string
	}
	if err := db.Model(&models.Place{}).
		Select("category, COALESCE(SUM(view_count), 0) AS count").
		Group("category").
		Order("category").
		Scan(&byCategory).Error; err != nil {
		return nil, fmt.Errorf("views by category: %w", err)
	}
	for _, row := range byCategory {
		stats.ViewsByCategory = append(stats.ViewsByCategory, models.CategoryViews{
			Category: row.Category,
			Count:    parseInt(row.Count),
		})
	}

	var top []models.TopPlace
	if err := db.Model(&models.Place{}).
		Select("id, name, category, image_url, view_count").
		Order("view_count DESC, id ASC").
		Limit(topPlacesLimit).
		Scan(&top).Error; err != nil {
		return nil, fmt.Errorf("top places: %w", err)
	}
	if top != nil {
		stats.TopPlaces = top
	}

	return stats, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
