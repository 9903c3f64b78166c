package dto

import "placehub/internal/microservices/http-api/models"

// CreatePlaceDTO used for places.create
type CreatePlaceDTO struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required,max=100"`
	Latitude    string  `json:"latitude" binding:"required,max=50,decimal"`
	Longitude   string  `json:"longitude" binding:"required,max=50,decimal"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	VideoURL    *string `json:"videoUrl,omitempty"`
	AudioURL    *string `json:"audioUrl,omitempty"`
}

// UpdatePlaceDTO used for places.update (partial updates allowed)
type UpdatePlaceDTO struct {
	ID          int64   `json:"id" binding:"required,min=1"`
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1"`
	Category    *string `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Latitude    *string `json:"latitude,omitempty" binding:"omitempty,max=50,decimal"`
	Longitude   *string `json:"longitude,omitempty" binding:"omitempty,max=50,decimal"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	VideoURL    *string `json:"videoUrl,omitempty"`
	AudioURL    *string `json:"audioUrl,omitempty"`
}

// Converters
func (d CreatePlaceDTO) ToModel() models.Place {
	return models.Place{
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
		ImageURL:    d.ImageURL,
		VideoURL:    d.VideoURL,
		AudioURL:    d.AudioURL,
	}
}

// Fields returns the columns to update; fields left out of the request are not touched.
func (d UpdatePlaceDTO) Fields() map[string]any {
	fields := map[string]any{}
	if d.Name != nil {
		fields["name"] = *d.Name
	}
	if d.Description != nil {
		fields["description"] = *d.Description
	}
	if d.Category != nil {
		fields["category"] = *d.Category
	}
	if d.Latitude != nil {
		fields["latitude"] = *d.Latitude
	}
	if d.Longitude != nil {
		fields["longitude"] = *d.Longitude
	}
	if d.ImageURL != nil {
		fields["image_url"] = *d.ImageURL
	}
	if d.VideoURL != nil {
		fields["video_url"] = *d.VideoURL
	}
	if d.AudioURL != nil {
		fields["audio_url"] = *d.AudioURL
	}
	return fields
}

// AddPlaceImageDTO used for placeImages.add
type AddPlaceImageDTO struct {
	PlaceID  int64  `json:"placeId" binding:"required,min=1"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

func (d AddPlaceImageDTO) ToModel() models.PlaceImage {
	return models.PlaceImage{
		PlaceID:  d.PlaceID,
		ImageURL: d.ImageURL,
	}
}
