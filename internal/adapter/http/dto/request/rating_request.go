package request

type UpdateRatingRequest struct {
	Rating *float64 `json:"rating" form:"rating" binding:"required"`
}
