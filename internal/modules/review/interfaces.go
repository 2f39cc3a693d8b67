package review

import (
	"context"

	"placehub/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetByPlace(ctx context.Context, placeID string) ([]domain.Review, error)
	GetByUser(ctx context.Context, userID string) ([]domain.Review, error)
	Exists(ctx context.Context, userID, placeID string) (bool, error)
	Average(ctx context.Context, placeID string) (float64, error)
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id string) error
}

// PlaceGate is the catalog lookup reviews are validated against.
type PlaceGate interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}
