package review

import (
	"context"
	"errors"
	"strings"

	"placehub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	reviews ReviewRepo
	places  PlaceGate
}

func NewService(reviews ReviewRepo, places PlaceGate) *Service {
	return &Service{reviews: reviews, places: places}
}

// Create stores a new review. The pre-check catches the common duplicate; the
// unique index catches the race where two inserts for the same (user, place)
// pair run concurrently — the loser's insert fails and maps to ErrConflict.
func (s *Service) Create(ctx context.Context, userID, userName string, req CreateReviewRequest) (*domain.Review, error) {
	if userID == "" || req.PlaceID == "" || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	if _, err := s.places.GetByID(ctx, req.PlaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	exists, err := s.reviews.Exists(ctx, userID, req.PlaceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	rv := &domain.Review{
		PlaceID:      req.PlaceID,
		UserID:       userID,
		UserName:     userName,
		UserInitials: domain.Initials(userName),
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	if placeID == "" {
		return nil, ErrValidation
	}
	return s.reviews.GetByPlace(ctx, placeID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	if userID == "" {
		return nil, ErrValidation
	}
	return s.reviews.GetByUser(ctx, userID)
}

// Rating returns the arithmetic mean over all of the place's reviews, 0.0
// when none exist.
func (s *Service) Rating(ctx context.Context, placeID string) (*RatingResponse, error) {
	if placeID == "" {
		return nil, ErrValidation
	}

	reviews, err := s.reviews.GetByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	avg, err := s.reviews.Average(ctx, placeID)
	if err != nil {
		return nil, err
	}

	return &RatingResponse{
		PlaceID: placeID,
		Average: avg,
		Count:   len(reviews),
	}, nil
}

func (s *Service) HasReviewed(ctx context.Context, userID, placeID string) (bool, error) {
	if userID == "" || placeID == "" {
		return false, nil
	}
	return s.reviews.Exists(ctx, userID, placeID)
}

// Update rewrites rating and comment of the caller's own review.
func (s *Service) Update(ctx context.Context, reviewID, userID string, req UpdateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rv.UserID != userID {
		return nil, ErrForbidden
	}

	rv.Rating = req.Rating
	rv.Comment = req.Comment

	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, reviewID, userID string) error {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rv.UserID != userID {
		return ErrForbidden
	}
	return s.reviews.Delete(ctx, reviewID)
}

// isUniqueViolation recognizes a duplicate-key error from either backend:
// typed SQLSTATE 23505 from pgx, constraint text from sqlite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE") ||
		strings.Contains(msg, "23505")
}
