package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PlaceID   int64     `gorm:"not null;index" json:"placeId"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	Rating    int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment   *string   `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Associations
	Place *Place `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE;" json:"-"`
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewWithUser is a review joined with its author's display name.
type ReviewWithUser struct {
	Review
	UserName *string `json:"userName"`
}

// ReviewWithNames is the admin listing row: author and place display names.
type ReviewWithNames struct {
	Review
	UserName  *string `json:"userName"`
	PlaceName *string `json:"placeName"`
}
