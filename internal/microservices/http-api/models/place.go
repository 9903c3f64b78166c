package models

import "time"

// Place is a point of interest. Category is a free-text label matched by value
// against Category.Name, not a foreign key.
type Place struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"size:100;not null;index" json:"category"`
	Latitude    string    `gorm:"size:50;not null" json:"latitude"`
	Longitude   string    `gorm:"size:50;not null" json:"longitude"`
	ImageURL    *string   `gorm:"type:text" json:"imageUrl"`
	VideoURL    *string   `gorm:"type:text" json:"videoUrl"`
	AudioURL    *string   `gorm:"type:text" json:"audioUrl"`
	ViewCount   int64     `gorm:"not null;default:0" json:"viewCount"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Place) TableName() string {
	return "places"
}

// PlaceWithStats is a place with its rating aggregates computed from live review rows.
type PlaceWithStats struct {
	Place
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int64   `json:"reviewCount"`
}

// PlaceImage is an additional gallery image for a place.
type PlaceImage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PlaceID   int64     `gorm:"not null;index" json:"placeId"`
	ImageURL  string    `gorm:"type:text;not null" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`

	// Associations
	Place *Place `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (PlaceImage) TableName() string {
	return "place_images"
}
