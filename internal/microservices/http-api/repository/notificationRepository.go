package repository

import (
	"context"
	"fmt"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListForUser(ctx context.Context, userID int64) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, userID, notificationID int64) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// visibleTo matches rows targeted at the user plus broadcasts.
func visibleTo(db *gorm.DB, userID int64) *gorm.DB {
	return db.Where("user_id = ? OR user_id IS NULL", userID)
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperror.NotFound("user not found")
		}
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	notifications := []models.Notification{}
	if r.db == nil {
		return notifications, nil
	}
	err := visibleTo(r.db.WithContext(ctx), userID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	if r.db == nil {
		return 0, nil
	}
	var count int64
	err := visibleTo(r.db.WithContext(ctx).Model(&models.Notification{}), userID).
		Where("is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAsRead flags a row visible to the user. Broadcasts are shared, so marking
// one read clears it for every user.
func (r *notificationRepository) MarkAsRead(ctx context.Context, userID, notificationID int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	err := visibleTo(r.db.WithContext(ctx).Model(&models.Notification{}), userID).
		Where("id = ?", notificationID).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("mark notification %d read: %w", notificationID, err)
	}
	return nil
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	err := visibleTo(r.db.WithContext(ctx).Model(&models.Notification{}), userID).
		Where("is_read = ?", false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, userID, notificationID int64) error {
	if r.db == nil {
		return apperror.ErrStoreUnavailable
	}
	err := visibleTo(r.db.WithContext(ctx), userID).
		Where("id = ?", notificationID).
		Delete(&models.Notification{}).Error
	if err != nil {
		return fmt.Errorf("delete notification %d: %w", notificationID, err)
	}
	return nil
}
