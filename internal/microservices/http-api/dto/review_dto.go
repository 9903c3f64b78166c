package dto

import "placehub/internal/microservices/http-api/models"

// CreateReviewDTO for reviews.create; the author comes from the session.
type CreateReviewDTO struct {
	PlaceID int64   `json:"placeId" binding:"required,min=1"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=5000"`
}

func (d CreateReviewDTO) ToModel(userID int64) models.Review {
	return models.Review{
		PlaceID: d.PlaceID,
		UserID:  userID,
		Rating:  d.Rating,
		Comment: d.Comment,
	}
}
