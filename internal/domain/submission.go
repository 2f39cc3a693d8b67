package domain

import "time"

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Submission is a place proposed by a user, waiting for a moderator decision.
// Status moves exactly once from pending to approved or rejected and never
// comes back; the transition is a conditional write guarded on status=pending.
type Submission struct {
	ID              string           `json:"id" gorm:"primaryKey;size:36"`
	Name            string           `json:"name" gorm:"not null"`
	Category        string           `json:"category"`
	Description     string           `json:"description,omitempty"`
	Address         string           `json:"address"`
	Lat             float64          `json:"lat"`
	Lon             float64          `json:"lon"`
	OpensAt         string           `json:"opens_at,omitempty"`
	ClosesAt        string           `json:"closes_at,omitempty"`
	WorkingDays     []string         `json:"working_days,omitempty" gorm:"serializer:json"`
	Photos          []string         `json:"photos,omitempty" gorm:"serializer:json"`
	SubmittedBy     string           `json:"submitted_by" gorm:"size:36;index"`
	SubmittedByName string           `json:"submitted_by_name"`
	Status          SubmissionStatus `json:"status" gorm:"size:16;index;default:pending"`
	ModeratedBy     string           `json:"moderated_by,omitempty" gorm:"size:36;index"`
	ModeratedByName string           `json:"moderated_by_name,omitempty"`
	ModeratedAt     *time.Time       `json:"moderated_at,omitempty"`
	PlaceID         string           `json:"place_id,omitempty" gorm:"size:36"`
	CreatedAt       time.Time        `json:"created_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

// Decided reports whether the submission already reached a terminal status.
func (s *Submission) Decided() bool {
	return s.Status != SubmissionPending
}
