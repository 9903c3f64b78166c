package models

import "time"

const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification targets one user, or every user when UserID is nil.
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *int64    `gorm:"index" json:"userId"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:16;not null;default:'info'" json:"type"` // info, success, warning, error
	IsRead    bool      `gorm:"not null;default:false" json:"isRead"`
	Link      *string   `gorm:"type:text" json:"link"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
