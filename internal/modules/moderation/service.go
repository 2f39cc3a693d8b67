package moderation

import (
	"context"
	"errors"
	"strings"

	"placehub/internal/domain"
	"placehub/internal/modules/events"
	"placehub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	subs   SubmissionRepo
	events EventPublisher
}

func NewService(subs SubmissionRepo, events EventPublisher) *Service {
	return &Service{subs: subs, events: events}
}

// Submit creates a pending submission from client-supplied fields.
func (s *Service) Submit(ctx context.Context, userID, userName string, req SubmitRequest) (*domain.Submission, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return nil, ErrValidation
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		return nil, ErrValidation
	}

	sub := &domain.Submission{
		Name:            strings.TrimSpace(req.Name),
		Category:        strings.TrimSpace(req.Category),
		Description:     req.Description,
		Address:         strings.TrimSpace(req.Address),
		Lat:             req.Lat,
		Lon:             req.Lon,
		OpensAt:         req.OpensAt,
		ClosesAt:        req.ClosesAt,
		WorkingDays:     req.WorkingDays,
		Photos:          req.Photos,
		SubmittedBy:     userID,
		SubmittedByName: userName,
		Status:          domain.SubmissionPending,
	}

	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Submission, error) {
	return s.subs.ListPending(ctx)
}

func (s *Service) ListHistory(ctx context.Context, moderatorID string) ([]domain.Submission, error) {
	return s.subs.ListByModerator(ctx, moderatorID)
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]domain.Submission, error) {
	return s.subs.ListByUser(ctx, userID)
}

// Approve transitions pending -> approved and promotes the place. With two
// moderators racing on the same submission exactly one decision lands; the
// loser gets ErrConflict.
func (s *Service) Approve(ctx context.Context, subID, modID, modName string) (*domain.Place, error) {
	place, err := s.subs.Approve(ctx, subID, modID, modName)
	if err != nil {
		return nil, mapDecideErr(err)
	}

	if s.events != nil {
		s.events.Publish(events.Event{
			Type: events.SubmissionApproved,
			Payload: map[string]any{
				"submission_id": subID,
				"place_id":      place.ID,
				"moderated_by":  modID,
			},
		})
	}
	return place, nil
}

func (s *Service) Reject(ctx context.Context, subID, modID, modName string) error {
	if err := s.subs.Reject(ctx, subID, modID, modName); err != nil {
		return mapDecideErr(err)
	}

	if s.events != nil {
		s.events.Publish(events.Event{
			Type: events.SubmissionRejected,
			Payload: map[string]any{
				"submission_id": subID,
				"moderated_by":  modID,
			},
		})
	}
	return nil
}

func mapDecideErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrAlreadyDecided):
		return ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}
