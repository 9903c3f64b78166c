package dto

// CreateSharedListDTO for sharedFavorites.create
type CreateSharedListDTO struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	PlaceIDs    []int64 `json:"placeIds" binding:"required,min=1,max=100,dive,min=1"`
}

// CreateSharedListResponse returns the link id of a new shared list.
type CreateSharedListResponse struct {
	ID      int64  `json:"id"`
	ShareID string `json:"shareId"`
}

// ShareIDRequest addresses a shared list by its public id.
type ShareIDRequest struct {
	ShareID string `form:"shareId" json:"shareId" binding:"required,max=32"`
}
