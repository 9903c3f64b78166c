package dto

// IDRequest is the input of every procedure addressing a row by id.
type IDRequest struct {
	ID int64 `form:"id" json:"id" binding:"required,min=1"`
}

// PlaceIDRequest addresses a place from a procedure of another resource.
type PlaceIDRequest struct {
	PlaceID int64 `form:"placeId" json:"placeId" binding:"required,min=1"`
}

// SuccessResponse is the acknowledgment returned by mutations.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func OK() SuccessResponse {
	return SuccessResponse{Success: true}
}
