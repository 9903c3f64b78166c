package models

import "time"

// Favorite links a user to a place; the pair is unique.
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_favorites_user_place" json:"userId"`
	PlaceID   int64     `gorm:"not null;uniqueIndex:idx_favorites_user_place;index" json:"placeId"`
	CreatedAt time.Time `json:"createdAt"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Place *Place `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE;" json:"place"`
}

func (Favorite) TableName() string {
	return "favorites"
}
