package moderation

type SubmitRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address" validate:"required"`
	Lat         float64  `json:"lat" validate:"gte=-90,lte=90"`
	Lon         float64  `json:"lon" validate:"gte=-180,lte=180"`
	OpensAt     string   `json:"opens_at,omitempty"`
	ClosesAt    string   `json:"closes_at,omitempty"`
	WorkingDays []string `json:"working_days,omitempty"`
	Photos      []string `json:"photos,omitempty"`
}
