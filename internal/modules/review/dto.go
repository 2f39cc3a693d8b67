package review

type CreateReviewRequest struct {
	PlaceID string `json:"place_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty"`
}

type RatingResponse struct {
	PlaceID string  `json:"place_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
