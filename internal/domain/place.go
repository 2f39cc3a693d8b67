package domain

import "time"

// Place is an approved, catalog-visible business. Identity is immutable once
// promoted; display fields may still be edited by moderators later.
type Place struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null;index"`
	Category    string    `json:"category" gorm:"index"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	OpensAt     string    `json:"opens_at,omitempty"`
	ClosesAt    string    `json:"closes_at,omitempty"`
	WorkingDays []string  `json:"working_days,omitempty" gorm:"serializer:json"`
	Photos      []string  `json:"photos,omitempty" gorm:"serializer:json"`
	CreatedBy   string    `json:"created_by" gorm:"size:36;index"`
	Approved    bool      `json:"approved" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Place) TableName() string {
	return "places"
}

// PromotePlace derives the catalog record for an approved submission. Called
// only from the approve transaction, never from user-facing write paths.
func PromotePlace(sub *Submission, placeID string) *Place {
	return &Place{
		ID:          placeID,
		Name:        sub.Name,
		Category:    sub.Category,
		Description: sub.Description,
		Address:     sub.Address,
		Lat:         sub.Lat,
		Lon:         sub.Lon,
		OpensAt:     sub.OpensAt,
		ClosesAt:    sub.ClosesAt,
		WorkingDays: sub.WorkingDays,
		Photos:      sub.Photos,
		CreatedBy:   sub.SubmittedBy,
		Approved:    true,
	}
}
