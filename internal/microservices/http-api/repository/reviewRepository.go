package repository

import (
	"context"
	"fmt"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	GetByPlaceID(ctx context.Context, placeID int64) ([]models.ReviewWithUser, error)
	GetAll(ctx context.Context) ([]models.ReviewWithNames, error)
	Create(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// GetByPlaceID returns the reviews of one place with author names, newest first.
func (r *reviewRepository) GetByPlaceID(ctx context.Context, placeID int64) ([]models.ReviewWithUser, error) {
	reviews := []models.ReviewWithUser{}
	if r.db == nil {
		return reviews, nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("reviews.*, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Where("reviews.place_id = ?", placeID).
		Order("reviews.created_at DESC, reviews.id DESC").
		Scan(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews for place %d: %w", placeID, err)
	}
	return reviews, nil
}

// GetAll is the moderation listing across every place.
func (r *reviewRepository) GetAll(ctx context.Context) ([]models.ReviewWithNames, error) {
	reviews := []models.ReviewWithNames{}
	if r.db == nil {
		return reviews, nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("reviews.*, users.name AS user_name, places.name AS place_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Joins("LEFT JOIN places ON places.id = reviews.place_id").
		Order("reviews.created_at DESC, reviews.id DESC").
		Scan(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperror.NotFound("place not found")
		}
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if err := r.db.WithContext(ctx).Delete(&models.Review{}, id).Error; err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	return nil
}
