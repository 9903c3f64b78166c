package repository

import (
	"context"
	"fmt"
	"time"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	FindByOpenID(ctx context.Context, openID string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert inserts the user or, when the open id is already known, refreshes
// last_signed_in and overwrites only the profile fields that were provided.
// It returns the stored row.
func (r *userRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	if r.db == nil {
		return nil, apperror.ErrStoreUnavailable
	}

	now := time.Now()
	if user.LastSignedIn.IsZero() {
		user.LastSignedIn = now
	}

	updates := []string{"last_signed_in", "updated_at"}
	if user.Name != nil {
		updates = append(updates, "name")
	}
	if user.Email != nil {
		updates = append(updates, "email")
	}
	if user.LoginMethod != nil {
		updates = append(updates, "login_method")
	}
	if user.Role != "" {
		updates = append(updates, "role")
	} else {
		user.Role = models.RoleUser
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "open_id"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(user).Error; err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", user.OpenID, err)
	}

	return r.FindByOpenID(ctx, user.OpenID)
}

// FindByOpenID returns (nil, nil) when the open id is unknown.
func (r *userRepository) FindByOpenID(ctx context.Context, openID string) (*models.User, error) {
	if r.db == nil {
		return nil, nil
	}
	var user models.User
	if err := r.db.WithContext(ctx).Where("open_id = ?", openID).First(&user).Error; err != nil {
		// return nil rather than a zero-value user so callers never mistake it for a match
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by open id: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if r.db == nil {
		return nil, nil
	}
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}
