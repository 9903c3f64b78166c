package repository

import (
	"context"
	"fmt"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if r.db == nil {
		return categories, nil
	}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	if r.db == nil {
		return nil, nil
	}
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperror.Conflictf("category %q already exists", category.Name)
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperror.Conflict("category name already exists")
		}
		return fmt.Errorf("update category %d: %w", id, err)
	}
	return nil
}

// Delete refuses to remove a category that places still reference by name.
// The check and the delete share one transaction. A missing category is a no-op.
func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if isNotFound(err) {
				return nil
			}
			return fmt.Errorf("load category %d: %w", id, err)
		}

		var inUse int64
		if err := tx.Model(&models.Place{}).
			Where("category = ?", category.Name).
			Count(&inUse).Error; err != nil {
			return fmt.Errorf("count places in category: %w", err)
		}
		if inUse > 0 {
			return apperror.Conflictf("category %q is used by %d place(s)", category.Name, inUse)
		}

		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("delete category %d: %w", id, err)
		}
		return nil
	})
}
