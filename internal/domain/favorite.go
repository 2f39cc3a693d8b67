package domain

import "time"

// Favorite links a user to a place they saved. One row per (user, place) pair;
// toggling deletes and recreates the row rather than versioning it.
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user_id" gorm:"size:36;not null;index;uniqueIndex:idx_favorites_user_place"`
	PlaceID   string    `json:"place_id" gorm:"size:36;not null;index;uniqueIndex:idx_favorites_user_place"`
	CreatedAt time.Time `json:"created_at"`

	// Virtual field for preload
	Place *Place `json:"place,omitempty" gorm:"foreignKey:PlaceID"`
}

func (Favorite) TableName() string {
	return "favorites"
}
