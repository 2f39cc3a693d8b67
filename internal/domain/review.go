package domain

import (
	"strings"
	"time"
)

// Review is one user's rating of one place. The (user_id, place_id) pair is
// unique; the index backs the race-safe path of duplicate detection.
type Review struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	PlaceID      string    `json:"place_id" gorm:"size:36;not null;index;uniqueIndex:idx_reviews_user_place"`
	UserID       string    `json:"user_id" gorm:"size:36;not null;index;uniqueIndex:idx_reviews_user_place"`
	UserName     string    `json:"user_name"`
	UserInitials string    `json:"user_initials,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// Initials derives up to two display initials from a full name.
func Initials(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		r := []rune(fields[0])
		return strings.ToUpper(string(r[0]))
	default:
		first := []rune(fields[0])
		last := []rune(fields[len(fields)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
}
