package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is created or refreshed on every sign-in; OpenID is the identity key issued by the OAuth provider.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OpenID       string    `gorm:"column:open_id;size:64;uniqueIndex;not null" json:"openId"`
	Name         *string   `gorm:"type:text" json:"name"`
	Email        *string   `gorm:"size:320" json:"email"`
	LoginMethod  *string   `gorm:"size:64" json:"loginMethod"`
	Role         string    `gorm:"size:16;default:'user';not null" json:"role"` // only 2 roles: "user", "admin"
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `gorm:"not null" json:"lastSignedIn"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
