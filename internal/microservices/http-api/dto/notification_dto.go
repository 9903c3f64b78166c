package dto

import "placehub/internal/microservices/http-api/models"

// CreateNotificationDTO for notifications.create; no userId broadcasts to everyone.
type CreateNotificationDTO struct {
	UserID  *int64  `json:"userId,omitempty" binding:"omitempty,min=1"`
	Title   string  `json:"title" binding:"required,max=255"`
	Message string  `json:"message" binding:"required"`
	Type    string  `json:"type,omitempty" binding:"omitempty,oneof=info success warning error"`
	Link    *string `json:"link,omitempty"`
}

func (d CreateNotificationDTO) ToModel() models.Notification {
	kind := d.Type
	if kind == "" {
		kind = models.NotificationInfo
	}
	return models.Notification{
		UserID:  d.UserID,
		Title:   d.Title,
		Message: d.Message,
		Type:    kind,
		Link:    d.Link,
	}
}

// NotificationIDRequest addresses one notification for markAsRead and delete.
type NotificationIDRequest struct {
	NotificationID int64 `json:"notificationId" binding:"required,min=1"`
}
