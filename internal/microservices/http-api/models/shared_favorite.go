package models

import "time"

// SharedFavoriteList is a public, read-only snapshot of places curated by a user.
type SharedFavoriteList struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"userId"`
	ShareID     string    `gorm:"size:32;uniqueIndex;not null" json:"shareId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	ViewCount   int64     `gorm:"not null;default:0" json:"viewCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Associations
	User    *User                     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Entries []SharedFavoriteListPlace `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (SharedFavoriteList) TableName() string {
	return "shared_favorite_lists"
}

// SharedFavoriteListPlace keeps the submitted order of places in a shared list.
type SharedFavoriteListPlace struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ListID   int64 `gorm:"not null;index:idx_shared_list_position" json:"listId"`
	PlaceID  int64 `gorm:"not null;index" json:"placeId"`
	Position int   `gorm:"not null;index:idx_shared_list_position" json:"position"`

	// Associations
	Place *Place `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (SharedFavoriteListPlace) TableName() string {
	return "shared_favorite_list_places"
}

type SharedListCreator struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// SharedFavoriteListDetail is the public view of a shared list.
type SharedFavoriteListDetail struct {
	SharedFavoriteList
	Places  []Place            `json:"places"`
	Creator *SharedListCreator `json:"creator"`
}
