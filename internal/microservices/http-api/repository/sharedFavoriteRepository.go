package repository

import (
	"context"
	"fmt"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type SharedFavoriteRepository interface {
	Create(ctx context.Context, list *models.SharedFavoriteList, placeIDs []int64) error
	GetByShareID(ctx context.Context, shareID string) (*models.SharedFavoriteListDetail, error)
	IncrementViewCount(ctx context.Context, shareID string) error
	GetByUser(ctx context.Context, userID int64) ([]models.SharedFavoriteList, error)
}

type sharedFavoriteRepository struct {
	db *gorm.DB
}

func NewSharedFavoriteRepository(db *gorm.DB) SharedFavoriteRepository {
	return &sharedFavoriteRepository{db: db}
}

// Create stores the list and one entry per place, positions following the
// order of placeIDs. Both writes commit together or not at all.
func (r *sharedFavoriteRepository) Create(ctx context.Context, list *models.SharedFavoriteList, placeIDs []int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Entries").Create(list).Error; err != nil {
			if pgErrorCode(err) == pgUniqueViolation {
				return apperror.Conflict("share id already taken")
			}
			return fmt.Errorf("create shared list: %w", err)
		}

		entries := make([]models.SharedFavoriteListPlace, 0, len(placeIDs))
		for i, placeID := range placeIDs {
			entries = append(entries, models.SharedFavoriteListPlace{
				ListID:   list.ID,
				PlaceID:  placeID,
				Position: i,
			})
		}
		if err := tx.Create(&entries).Error; err != nil {
			if pgErrorCode(err) == pgForeignKeyViolation {
				return apperror.NotFound("place not found")
			}
			return fmt.Errorf("create shared list entries: %w", err)
		}
		return nil
	})
}

// GetByShareID returns (nil, nil) when no list has the share id. Places are
// loaded in one batch and returned in stored order; places deleted since the
// list was shared are skipped.
func (r *sharedFavoriteRepository) GetByShareID(ctx context.Context, shareID string) (*models.SharedFavoriteListDetail, error) {
	if r.db == nil {
		return nil, nil
	}
	db := r.db.WithContext(ctx)

	var list models.SharedFavoriteList
	if err := db.Where("share_id = ?", shareID).First(&list).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shared list %s: %w", shareID, err)
	}

	var entries []models.SharedFavoriteListPlace
	if err := db.Where("list_id = ?", list.ID).
		Order("position ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("get shared list entries: %w", err)
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.PlaceID)
	}

	var places []models.Place
	if len(ids) > 0 {
		if err := db.Where("id IN ?", ids).Find(&places).Error; err != nil {
			return nil, fmt.Errorf("get shared list places: %w", err)
		}
	}
	byID := make(map[int64]models.Place, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}

	detail := &models.SharedFavoriteListDetail{
		SharedFavoriteList: list,
		Places:             make([]models.Place, 0, len(ids)),
	}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			detail.Places = append(detail.Places, p)
		}
	}

	var creator models.User
	err := db.Select("id", "name").First(&creator, list.UserID).Error
	switch {
	case err == nil:
		detail.Creator = &models.SharedListCreator{ID: creator.ID, Name: creator.Name}
	case !isNotFound(err):
		return nil, fmt.Errorf("get shared list creator: %w", err)
	}

	return detail, nil
}

func (r *sharedFavoriteRepository) IncrementViewCount(ctx context.Context, shareID string) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	err := r.db.WithContext(ctx).
		Model(&models.SharedFavoriteList{}).
		Where("share_id = ?", shareID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("increment view count for shared list %s: %w", shareID, err)
	}
	return nil
}

func (r *sharedFavoriteRepository) GetByUser(ctx context.Context, userID int64) ([]models.SharedFavoriteList, error) {
	lists := []models.SharedFavoriteList{}
	if r.db == nil {
		return lists, nil
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("list shared lists: %w", err)
	}
	return lists, nil
}
