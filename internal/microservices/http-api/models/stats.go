package models

type CategoryViews struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type TopPlace struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	ImageURL  *string `json:"imageUrl"`
	ViewCount int64   `json:"viewCount"`
}

// ViewStats is the admin analytics summary of place views.
type ViewStats struct {
	TotalViews      int64           `json:"totalViews"`
	ViewsByCategory []CategoryViews `json:"viewsByCategory"`
	TopPlaces       []TopPlace      `json:"topPlaces"`
}

// EmptyViewStats is returned when the store is not configured.
func EmptyViewStats() *ViewStats {
	return &ViewStats{
		ViewsByCategory: []CategoryViews{},
		TopPlaces:       []TopPlace{},
	}
}
