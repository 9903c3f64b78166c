package dto

import "placehub/internal/microservices/http-api/models"

type CreateCategoryDTO struct {
	Name     string  `json:"name" binding:"required,max=100"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type UpdateCategoryDTO struct {
	ID       int64   `json:"id" binding:"required,min=1"`
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func (d CreateCategoryDTO) ToModel() models.Category {
	return models.Category{
		Name:     d.Name,
		ImageURL: d.ImageURL,
	}
}

func (d UpdateCategoryDTO) Fields() map[string]any {
	fields := map[string]any{}
	if d.Name != nil {
		fields["name"] = *d.Name
	}
	if d.ImageURL != nil {
		fields["image_url"] = *d.ImageURL
	}
	return fields
}
