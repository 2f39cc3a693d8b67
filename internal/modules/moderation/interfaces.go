package moderation

import (
	"context"

	"placehub/internal/domain"
	"placehub/internal/modules/events"
)

// SubmissionRepo is the store adapter the queue runs on. Approve and Reject
// are conditional writes: they only land while the row is still pending, and
// Approve inserts the promoted place in the same transaction.
type SubmissionRepo interface {
	Create(ctx context.Context, sub *domain.Submission) error
	ListPending(ctx context.Context) ([]domain.Submission, error)
	ListByModerator(ctx context.Context, moderatorID string) ([]domain.Submission, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Submission, error)
	Approve(ctx context.Context, id, modID, modName string) (*domain.Place, error)
	Reject(ctx context.Context, id, modID, modName string) error
}

type EventPublisher interface {
	Publish(evt events.Event)
}
