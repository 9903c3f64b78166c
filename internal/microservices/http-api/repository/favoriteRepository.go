package repository

import (
	"context"
	"fmt"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, placeID int64) error
	Remove(ctx context.Context, userID, placeID int64) error
	GetByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
	Exists(ctx context.Context, userID, placeID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add is idempotent: a second add of the same pair leaves the single row in place.
func (r *favoriteRepository) Add(ctx context.Context, userID, placeID int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	favorite := &models.Favorite{
		UserID:  userID,
		PlaceID: placeID,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error; err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperror.NotFound("place not found")
		}
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove is a no-op when the pair is not favorited.
func (r *favoriteRepository) Remove(ctx context.Context, userID, placeID int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Delete(&models.Favorite{}).Error; err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) GetByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	favorites := []models.Favorite{}
	if r.db == nil {
		return favorites, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("Place").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, placeID int64) (bool, error) {
	if r.db == nil {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
