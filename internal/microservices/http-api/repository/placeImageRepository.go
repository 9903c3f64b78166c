package repository

import (
	"context"
	"fmt"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type PlaceImageRepository interface {
	ListByPlace(ctx context.Context, placeID int64) ([]models.PlaceImage, error)
	Create(ctx context.Context, image *models.PlaceImage) error
	Delete(ctx context.Context, id int64) error
}

type placeImageRepository struct {
	db *gorm.DB
}

func NewPlaceImageRepository(db *gorm.DB) PlaceImageRepository {
	return &placeImageRepository{db: db}
}

// ListByPlace returns gallery images oldest first, the order they were added.
func (r *placeImageRepository) ListByPlace(ctx context.Context, placeID int64) ([]models.PlaceImage, error) {
	images := []models.PlaceImage{}
	if r.db == nil {
		return images, nil
	}
	if err := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("created_at ASC, id ASC").
		Find(&images).Error; err != nil {
		return nil, fmt.Errorf("list place images: %w", err)
	}
	return images, nil
}

func (r *placeImageRepository) Create(ctx context.Context, image *models.PlaceImage) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperror.NotFound("place not found")
		}
		return fmt.Errorf("add place image: %w", err)
	}
	return nil
}

func (r *placeImageRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if err := r.db.WithContext(ctx).Delete(&models.PlaceImage{}, id).Error; err != nil {
		return fmt.Errorf("delete place image %d: %w", id, err)
	}
	return nil
}
